package analysis

import (
	"strings"

	"lawmate-backend/models"
)

var criminalTerms = []string{
	"policie", "trestní", "trestný", "trestní oznámení", "obviněn", "obžaloba", "výpověď",
	"zadržení", "předvolání", "soud", "státní zástupce", "kriminálka",
	"napadení", "ublížení", "násilí", "vyhrožuje", "vydírání",
	"krádež", "loupež", "podvod", "drogy", "alkohol", "řízení pod vlivem",
	"vražda", "zavraždil", "zabil", "smrt", "usmrcení",
}

var civilTerms = []string{
	"smlouva", "faktura", "nezaplatil", "neplatí", "dluh", "půjčka", "peníze",
	"žaloba", "výzva k úhradě", "náhrada škody", "škoda",
	"reklamace", "vrácení", "záruka", "spotřebitel",
	"pronájem", "nájem", "kauce", "soused", "plot", "hluk",
	"rozvod", "dědictví", "opatrovnictví", "péče o dítě",
	"zaměstnavatel", "výpověď z práce", "pracovní smlouva",
}

var generalTerms = []string{
	"jaký je zákon", "jaký zákon platí", "paragraf", "sbírka", "ústav",
	"jak to říká zákon", "co říká zákon", "právní předpis", "vyhláška",
	"judikatura", "nejvyšší soud", "nss", "ústavní soud",
}

// InferCategory guesses the legal domain from the question text. Each term
// found as a case-insensitive substring adds 2 to its domain's score; the
// strictly highest score wins, with declaration order breaking ties. All
// zero scores fall back to the general legal order.
func InferCategory(text string) models.Category {
	t := strings.ToLower(NormalizeText(text))

	domains := []struct {
		category models.Category
		terms    []string
	}{
		{models.CategoryCriminal, criminalTerms},
		{models.CategoryCivil, civilTerms},
		{models.CategoryGeneral, generalTerms},
	}

	best := models.CategoryGeneral
	bestScore := 0
	for _, d := range domains {
		score := 0
		for _, term := range d.terms {
			if strings.Contains(t, term) {
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = d.category
		}
	}
	if bestScore == 0 {
		return models.CategoryGeneral
	}
	return best
}
