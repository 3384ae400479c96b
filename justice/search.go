package justice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"lawmate-backend/analysis"
	"lawmate-backend/models"

	"go.uber.org/zap"
)

const (
	// topDecisions is how many ranked candidates are kept.
	topDecisions = 5
	// maxListFields caps the keyword and provision lists on a record.
	maxListFields = 10
)

// Searcher is the retrieval capability the advice pipeline consumes.
// Failures never surface; a searcher returns whatever it could gather.
type Searcher interface {
	SearchRecentDecisions(ctx context.Context, question string, lookbackDays, maxItemsPerDay int) []models.Decision
}

// SearchRecentDecisions scans the last lookbackDays day pages for decisions
// whose text overlaps the question's keywords and returns the top 5 by
// relevance. Empty keywords or a non-positive window return immediately
// without any remote call. A single day's fetch failure is skipped silently:
// partial data beats no data.
func (c *Client) SearchRecentDecisions(ctx context.Context, question string, lookbackDays, maxItemsPerDay int) []models.Decision {
	keywords := analysis.ExtractKeywords(question, analysis.DefaultMaxKeywords)
	if len(keywords) == 0 || lookbackDays <= 0 {
		return nil
	}

	today := time.Now()
	var candidates []models.Decision

	for i := 0; i < lookbackDays; i++ {
		d := today.AddDate(0, 0, -i)
		items, err := c.fetchDay(ctx, d.Year(), int(d.Month()), d.Day())
		if err != nil {
			c.logger.Debug("skipping day",
				zap.String("day", d.Format("2006-01-02")),
				zap.Error(err))
			continue
		}

		if maxItemsPerDay > 0 && len(items) > maxItemsPerDay {
			items = items[:maxItemsPerDay]
		}

		for _, it := range items {
			subject := analysis.NormalizeText(it.PredmetRizeni)

			parts := make([]string, 0, 1+len(it.KlicovaSlova)+len(it.ZminenaUstanoveni))
			parts = append(parts, subject)
			parts = append(parts, it.KlicovaSlova...)
			parts = append(parts, it.ZminenaUstanoveni...)
			blob := strings.ToLower(strings.Join(parts, " "))

			overlap := 0
			for _, kw := range keywords {
				if strings.Contains(blob, kw) {
					overlap++
				}
			}
			if overlap == 0 {
				continue
			}

			candidates = append(candidates, models.Decision{
				CaseRef:         it.JednaciCislo,
				Court:           it.Soud,
				SubjectMatter:   subject,
				IssuedOn:        it.DatumVydani,
				PublishedOn:     it.DatumZverejneni,
				Keywords:        capList(it.KlicovaSlova, maxListFields),
				CitedProvisions: capList(it.ZminenaUstanoveni, maxListFields),
				Link:            it.Odkaz,
				Score:           float64(overlap) / float64(len(keywords)),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topDecisions {
		candidates = candidates[:topDecisions]
	}
	return candidates
}

// DecisionsToSources projects decisions into the source shape used in
// prompts and the UI.
func DecisionsToSources(decisions []models.Decision) []models.SourceItem {
	sources := make([]models.SourceItem, 0, len(decisions))
	for _, d := range decisions {
		kw := d.Keywords
		if len(kw) > 5 {
			kw = kw[:5]
		}
		sources = append(sources, models.SourceItem{
			Title:       fmt.Sprintf("%s – %s (%s)", d.Court, d.CaseRef, d.IssuedOn),
			URL:         d.Link,
			WhyRelevant: fmt.Sprintf("Předmět řízení: %s. Klíčová slova: %s.", d.SubjectMatter, strings.Join(kw, ", ")),
		})
	}
	return sources
}

func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
