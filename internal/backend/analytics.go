package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yuvaraja/smartpay-agent/internal/types"
)

// FetchSummary retrieves the dataset snapshot from the analyze endpoint.
// Every panel view is a fresh fetch; nothing is cached between calls. Any
// failure collapses to *Unavailable.
func (c *Client) FetchSummary(ctx context.Context) (*types.AnalyticsSummary, error) {
	var envelope struct {
		Summary types.AnalyticsSummary `json:"summary"`
	}
	if err := c.getJSON(ctx, "/analyze", &envelope); err != nil {
		return nil, err
	}
	return &envelope.Summary, nil
}

// FetchExplanations retrieves the feature-importance explanations from the
// explain endpoint. Entries keep backend order. Any failure collapses to
// *Unavailable.
func (c *Client) FetchExplanations(ctx context.Context) ([]types.FeatureImportance, error) {
	var envelope struct {
		TopFeatures []types.FeatureImportance `json:"top_features"`
	}
	if err := c.getJSON(ctx, "/explain", &envelope); err != nil {
		return nil, err
	}
	return envelope.TopFeatures, nil
}

// getJSON performs a best-effort GET against path and decodes the body into
// out. All failure modes fold into *Unavailable with a readable reason; the
// analytics panels never fail hard.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.analyticsTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &Unavailable{Reason: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Unavailable{Reason: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Unavailable{Reason: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Unavailable{Reason: "failed to decode response: " + err.Error()}
	}
	return nil
}
