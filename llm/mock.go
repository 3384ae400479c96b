package llm

import (
	"context"

	"lawmate-backend/models"
)

// MockProvider returns a fixed valid answer. It needs no network or keys and
// is the default backend.
type MockProvider struct{}

// NewMockProvider creates the offline stub provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string {
	return "mock"
}

// Generate returns the canned answer, freshly copied per call.
func (p *MockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (*models.Answer, error) {
	ans := &models.Answer{
		TrafficLight: models.LightYellow,
		RiskScore:    45,
		Summary: "Z toho, co píšeš, to vypadá na běžný právní problém, který jde často vyřešit " +
			"domluvou nebo správným postupem. U detailů ale záleží na dokumentech a termínech.",
		WhatToDoNow: []string{
			"Sepiš si časovou osu (kdy se co stalo).",
			"Schovej důkazy (smlouvy, screenshoty, fotky).",
			"Komunikuj pokud možno písemně.",
		},
		WhatToPrepare: []string{
			"Kopie smluv / objednávek / faktur.",
			"Doklad o platbě (výpis, potvrzení).",
			"Kontakty na svědky, pokud existují.",
		},
		RelevantLaws: []string{
			"Občanský zákoník (zákon č. 89/2012 Sb.) – obecně závazky a smlouvy",
		},
		ImportantDeadlines: []string{
			"Nejsem si jistý bez detailů (záleží na typu věci).",
		},
		WhenToContactLawyer: []string{
			"Když hrozí soud / exekuce nebo vysoká částka.",
			"Když protistrana ignoruje výzvy nebo vyhrožuje.",
		},
		Notes: []string{
			"Neber to jako právní stanovisko – je to orientační pomoc.",
			"U lhůt to raději neodkládej.",
		},
		Sources: []models.SourceItem{},
	}
	if err := ans.Validate(); err != nil {
		return nil, badResponseError(err, "mock answer failed validation")
	}
	return ans, nil
}
