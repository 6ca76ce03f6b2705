package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/yuvaraja/smartpay-agent/internal/types"
)

// Predict sends a candidate to the backend and returns the predicted salary.
// It makes a single attempt per call; retries are left to explicit caller
// re-submission. Failures map to the outcome types in errors.go.
func (c *Client) Predict(ctx context.Context, input types.CandidateInput) (*types.PredictionResult, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode predict request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.predictTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, "/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{
			URL:     c.baseURL + "/predict",
			Message: "request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{
			URL:     c.baseURL + "/predict",
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var result types.PredictionResult
		// Tolerant decoding: a valid JSON body without predicted_salary_usd
		// yields 0. A body that is not JSON at all is surfaced instead.
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, newAPIError(resp.StatusCode, body)
		}
		return &result, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= 500:
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: string(body)}
	default:
		return nil, newAPIError(resp.StatusCode, body)
	}
}
