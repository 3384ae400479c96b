package analysis

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "ahoj světe", "ahoj světe"},
		{"collapses runs", "ahoj   světe", "ahoj světe"},
		{"mixed whitespace", "  ahoj\t\nsvěte \r\n", "ahoj světe"},
		{"only whitespace", " \t\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	in := "  soused \t mi  nezaplatil\n dluh  "
	once := NormalizeText(in)
	if twice := NormalizeText(once); twice != once {
		t.Errorf("NormalizeText not idempotent: %q then %q", once, twice)
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want []string
	}{
		{
			name: "dedupes and keeps order",
			in:   "Mám dluh dluh u souseda",
			max:  0,
			want: []string{"mám", "dluh", "souseda"},
		},
		{
			name: "drops stopwords and short tokens",
			in:   "co je to za smlouvu",
			max:  0,
			want: []string{"smlouvu"},
		},
		{
			name: "keeps digits",
			in:   "pokuta 15000 korun",
			max:  0,
			want: []string{"pokuta", "15000", "korun"},
		},
		{
			name: "respects the cap",
			in:   "exekuce soud pokuta smlouva nájem",
			max:  2,
			want: []string{"exekuce", "soud"},
		},
		{
			name: "empty text",
			in:   "",
			max:  0,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.in, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q, %d) = %v, want %v", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
