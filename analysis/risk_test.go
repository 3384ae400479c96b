package analysis

import (
	"testing"

	"lawmate-backend/models"
)

func TestHeuristicRiskScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category models.Category
		want     int
	}{
		{
			name:     "neutral text scores the base",
			text:     "ahoj",
			category: models.CategoryGeneral,
			want:     10,
		},
		{
			name:     "red term counts once despite repetition",
			text:     "dluh dluh dluh",
			category: models.CategoryCivil,
			want:     40,
		},
		{
			name:     "yellow term",
			text:     "ta smlouva je neplatná",
			category: models.CategoryCivil,
			want:     25,
		},
		{
			name:     "money amount",
			text:     "mám zaplatit 15 000 korun",
			category: models.CategoryGeneral,
			want:     25,
		},
		{
			name:     "urgency",
			text:     "musím to vyřešit dnes",
			category: models.CategoryGeneral,
			want:     25,
		},
		{
			name:     "criminal category bonus",
			text:     "ahoj",
			category: models.CategoryCriminal,
			want:     20,
		},
		{
			name:     "stacked signals clamp at 100",
			text:     "policie exekuce vražda žaloba dnes 50000",
			category: models.CategoryCriminal,
			want:     100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeuristicRiskScore(tt.text, tt.category); got != tt.want {
				t.Errorf("HeuristicRiskScore(%q, %q) = %d, want %d", tt.text, tt.category, got, tt.want)
			}
		})
	}
}

func TestHeuristicRiskScoreMonotone(t *testing.T) {
	base := HeuristicRiskScore("spor se sousedem", models.CategoryCivil)
	more := HeuristicRiskScore("spor se sousedem, hrozí exekuce", models.CategoryCivil)
	if more <= base {
		t.Errorf("adding a red term did not raise the score: %d then %d", base, more)
	}
}

func TestTrafficLightFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  models.TrafficLight
	}{
		{0, models.LightGreen},
		{34, models.LightGreen},
		{35, models.LightYellow},
		{69, models.LightYellow},
		{70, models.LightRed},
		{100, models.LightRed},
	}
	for _, tt := range tests {
		if got := TrafficLightFromScore(tt.score); got != tt.want {
			t.Errorf("TrafficLightFromScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestMergeAssessment(t *testing.T) {
	tests := []struct {
		name      string
		ansLight  models.TrafficLight
		ansScore  int
		heurLight models.TrafficLight
		heurScore int
		wantLight models.TrafficLight
		wantScore int
	}{
		{
			name:     "heuristic escalates an optimistic answer",
			ansLight: models.LightGreen, ansScore: 20,
			heurLight: models.LightRed, heurScore: 80,
			wantLight: models.LightRed, wantScore: 80,
		},
		{
			name:     "model may over-warn without correction",
			ansLight: models.LightRed, ansScore: 90,
			heurLight: models.LightYellow, heurScore: 40,
			wantLight: models.LightRed, wantScore: 90,
		},
		{
			name:     "equal severity leaves the answer alone",
			ansLight: models.LightYellow, ansScore: 50,
			heurLight: models.LightYellow, heurScore: 60,
			wantLight: models.LightYellow, wantScore: 50,
		},
		{
			name:     "escalation never lowers the score",
			ansLight: models.LightGreen, ansScore: 60,
			heurLight: models.LightYellow, heurScore: 40,
			wantLight: models.LightYellow, wantScore: 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ans := &models.Answer{TrafficLight: tt.ansLight, RiskScore: tt.ansScore}
			MergeAssessment(ans, tt.heurLight, tt.heurScore)
			if ans.TrafficLight != tt.wantLight || ans.RiskScore != tt.wantScore {
				t.Errorf("MergeAssessment = (%q, %d), want (%q, %d)",
					ans.TrafficLight, ans.RiskScore, tt.wantLight, tt.wantScore)
			}
		})
	}
}
