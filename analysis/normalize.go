// Package analysis implements the offline text heuristics: whitespace
// normalization, keyword extraction, legal-domain classification and the
// rule-based risk scorer with its merge policy.
package analysis

import (
	"regexp"
	"strings"
)

// DefaultMaxKeywords caps the extracted keyword list.
const DefaultMaxKeywords = 12

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tokenRe      = regexp.MustCompile(`[a-zá-ž0-9]{3,}`)
)

var czStopwords = func() map[string]struct{} {
	words := strings.Fields(`
a aby ať ale ani ano až be bez bude budou byl byla byli byste bych bychom bys by
co do kdo kde když které která které který
je jeho její jen ještě jestli jsem jsme jste jsou
k ke komu kolik kolem ku kvůli kde která které který když
na nad nebo než ni nic
o od okolo pak po pod podle protože proti pro
se si s spolu stejně svůj své svého svým svémi
ta tak taky tam tady ten tento to tu tuto
u už v ve vám vás vy váš vaše
z za ze že
`)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// NormalizeText collapses any run of whitespace to a single space and trims
// the ends. Idempotent.
func NormalizeText(text string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// ExtractKeywords lowercases the text, tokenizes on runs of letters (incl.
// Czech diacritics) and digits of length >= 3, drops stopwords and
// duplicates preserving first occurrence, and caps the result at
// maxKeywords (DefaultMaxKeywords when <= 0).
func ExtractKeywords(text string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	t := strings.ToLower(NormalizeText(text))
	words := tokenRe.FindAllString(t, -1)

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, maxKeywords)
	for _, w := range words {
		if _, stop := czStopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) >= maxKeywords {
			break
		}
	}
	return out
}
