package models

// Decision is one published court decision from the open-data index. It is
// built per retrieval call and never persisted or mutated afterwards.
type Decision struct {
	CaseRef         string   // jednaciCislo
	Court           string   // soud
	SubjectMatter   string   // predmetRizeni, whitespace-normalized
	IssuedOn        string   // datumVydani
	PublishedOn     string   // datumZverejneni
	Keywords        []string // klicovaSlova, at most 10
	CitedProvisions []string // zminenaUstanoveni, at most 10
	Link            string   // odkaz
	Score           float64  // keyword-overlap relevance in (0,1]
}
