package models

// Category is one of the supported legal domains. The values are the Czech
// labels shown in the UI and stored with sessions.
type Category string

const (
	CategoryCriminal Category = "Trestní právo"
	CategoryCivil    Category = "Občanské právo"
	CategoryGeneral  Category = "Právní řád ČR (obecně)"

	// CategoryAuto asks the server to infer the domain from the question.
	// It is resolved before anything is persisted with a question.
	CategoryAuto Category = "auto"
)

// Valid reports whether c is one of the three concrete domains.
func (c Category) Valid() bool {
	switch c {
	case CategoryCriminal, CategoryCivil, CategoryGeneral:
		return true
	}
	return false
}
