package analysis

import (
	"regexp"
	"strings"

	"lawmate-backend/models"
)

var redTerms = []string{
	"policie", "trestní oznámení", "obviněn", "obžaloba", "výpověď", "zadržení",
	"soud", "exekuce", "předvolání", "insolvence", "správní řízení",
	"vyhrožuje", "násilí", "napadení", "ublížení", "zabil", "vražda", "usmrcení", "krádež", "podvod",
	"dluh", "žaloba", "výzva k úhradě",
}

var yellowTerms = []string{
	"smlouva", "výpověď", "reklamace", "vrácení", "pokuta", "náhrada škody",
	"pronájem", "nájem", "rozvod", "dědictví", "dohoda", "zaměstnavatel",
	"odstoupení", "půjčka",
}

// Grouped-thousands amounts (15 000, 15.000) or any 4+ digit run.
var moneyRe = regexp.MustCompile(`\b(\d{1,3}(?:[ .]\d{3})+|\d{4,})\b`)

// HeuristicRiskScore is the offline risk estimate in [0,100]. Scoring is
// presence-based: a term contributes once no matter how often it occurs.
func HeuristicRiskScore(text string, category models.Category) int {
	t := strings.ToLower(text)
	score := 10

	for _, term := range redTerms {
		if strings.Contains(t, term) {
			score += 30
		}
	}
	for _, term := range yellowTerms {
		if strings.Contains(t, term) {
			score += 15
		}
	}
	if moneyRe.MatchString(t) {
		score += 15
	}
	if strings.Contains(t, "do zítra") || strings.Contains(t, "dnes") || strings.Contains(t, "lhůt") {
		score += 15
	}
	if strings.HasPrefix(strings.ToLower(string(category)), "trest") {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// TrafficLightFromScore maps a risk score to its light: >=70 red,
// >=35 yellow, else green.
func TrafficLightFromScore(score int) models.TrafficLight {
	switch {
	case score >= 70:
		return models.LightRed
	case score >= 35:
		return models.LightYellow
	default:
		return models.LightGreen
	}
}

// MergeAssessment reconciles the model's self-reported risk with the
// heuristic one. The heuristic is a safety floor: when its light is strictly
// more severe the answer adopts it and the risk score becomes the maximum of
// the two. The model may over-warn without correction.
func MergeAssessment(ans *models.Answer, heurLight models.TrafficLight, heurScore int) {
	if heurLight.Severity() > ans.TrafficLight.Severity() {
		ans.TrafficLight = heurLight
		if heurScore > ans.RiskScore {
			ans.RiskScore = heurScore
		}
	}
}
