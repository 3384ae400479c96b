// Package justice queries the rozhodnuti.justice.cz open-data index of
// published court decisions and ranks results against a question.
package justice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public open-data API root.
const DefaultBaseURL = "https://rozhodnuti.justice.cz/api"

// Client fetches day pages of the published-decisions index.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a decision-index client. An empty baseURL selects the
// public API.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// decisionItem mirrors one entry of a day page's "items" list.
type decisionItem struct {
	JednaciCislo      string   `json:"jednaciCislo"`
	Soud              string   `json:"soud"`
	PredmetRizeni     string   `json:"predmetRizeni"`
	DatumVydani       string   `json:"datumVydani"`
	DatumZverejneni   string   `json:"datumZverejneni"`
	KlicovaSlova      []string `json:"klicovaSlova"`
	ZminenaUstanoveni []string `json:"zminenaUstanoveni"`
	Odkaz             string   `json:"odkaz"`
}

type dayPage struct {
	Items []decisionItem `json:"items"`
}

// fetchDay retrieves page 0 of the decisions published on the given day.
func (c *Client) fetchDay(ctx context.Context, year, month, day int) ([]decisionItem, error) {
	url := fmt.Sprintf("%s/opendata/%d/%d/%d?page=0", c.baseURL, year, month, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("decision index returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var page dayPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse day page: %w", err)
	}
	return page.Items, nil
}
