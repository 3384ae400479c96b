package justice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

func decisionJSON(caseRef, subject string, keywords ...string) string {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return fmt.Sprintf(`{
		"jednaciCislo": %q,
		"soud": "Okresní soud v Brně",
		"predmetRizeni": %q,
		"datumVydani": "2026-08-20",
		"datumZverejneni": "2026-08-21",
		"klicovaSlova": [%s],
		"zminenaUstanoveni": [],
		"odkaz": "https://rozhodnuti.justice.cz/rozhodnuti/1"
	}`, caseRef, subject, strings.Join(quoted, ","))
}

func TestSearchRecentDecisionsNoCallWithoutKeywords(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())

	// All tokens are stopwords or too short.
	if got := c.SearchRecentDecisions(context.Background(), "a to je", 3, 200); got != nil {
		t.Errorf("SearchRecentDecisions = %v, want nil", got)
	}
	if got := c.SearchRecentDecisions(context.Background(), "exekuce", 0, 200); got != nil {
		t.Errorf("SearchRecentDecisions with zero lookback = %v, want nil", got)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("index was called %d times, want 0", n)
	}
}

func TestSearchRecentDecisionsRanksByOverlap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"items":[%s,%s,%s]}`,
			decisionJSON("10 C 1/2026", "spor o smluvní pokutu", "pokuta"),
			decisionJSON("20 C 2/2026", "exekuce pro dluh a pokutu", "exekuce", "dluh", "pokuta"),
			decisionJSON("30 C 3/2026", "rozvod manželství", "rozvod"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())
	got := c.SearchRecentDecisions(context.Background(), "exekuce dluh pokuta", 1, 200)

	if len(got) != 2 {
		t.Fatalf("got %d decisions, want 2", len(got))
	}
	if got[0].CaseRef != "20 C 2/2026" {
		t.Errorf("top decision = %q, want %q", got[0].CaseRef, "20 C 2/2026")
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("scores not descending: %v then %v", got[0].Score, got[1].Score)
	}
}

func TestSearchRecentDecisionsSkipsFailingDays(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"items":[%s]}`, decisionJSON("5 C 9/2026", "žaloba o dluh", "dluh"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())
	got := c.SearchRecentDecisions(context.Background(), "dluh", 2, 200)

	if len(got) != 1 {
		t.Fatalf("got %d decisions, want 1 from the surviving day", len(got))
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("index was called %d times, want 2", n)
	}
}

func TestSearchRecentDecisionsCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := make([]string, 8)
		for i := range items {
			items[i] = decisionJSON(fmt.Sprintf("%d C 1/2026", i), "žaloba o dluh", "dluh")
		}
		fmt.Fprintf(w, `{"items":[%s]}`, strings.Join(items, ","))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())

	if got := c.SearchRecentDecisions(context.Background(), "dluh", 1, 200); len(got) != 5 {
		t.Errorf("got %d decisions, want the top 5", len(got))
	}
	if got := c.SearchRecentDecisions(context.Background(), "dluh", 1, 3); len(got) != 3 {
		t.Errorf("got %d decisions with a per-day cap of 3, want 3", len(got))
	}
}

func TestDecisionsToSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"items":[%s]}`, decisionJSON("12 C 34/2026", "žaloba o dluh", "dluh", "žaloba"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())
	decisions := c.SearchRecentDecisions(context.Background(), "dluh", 1, 200)
	sources := DecisionsToSources(decisions)

	if len(sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(sources))
	}
	s := sources[0]
	if !strings.Contains(s.Title, "12 C 34/2026") || !strings.Contains(s.Title, "Okresní soud v Brně") {
		t.Errorf("source title %q missing case ref or court", s.Title)
	}
	if s.URL != "https://rozhodnuti.justice.cz/rozhodnuti/1" {
		t.Errorf("source url = %q", s.URL)
	}
	if !strings.Contains(s.WhyRelevant, "žaloba o dluh") {
		t.Errorf("why_relevant %q missing subject matter", s.WhyRelevant)
	}
}

func TestDecisionsToSourcesEmpty(t *testing.T) {
	if got := DecisionsToSources(nil); got == nil || len(got) != 0 {
		t.Errorf("DecisionsToSources(nil) = %v, want empty non-nil slice", got)
	}
}
