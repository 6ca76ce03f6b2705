package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yuvaraja/smartpay-agent/internal/backend"
	"github.com/yuvaraja/smartpay-agent/internal/schemas"
	"github.com/yuvaraja/smartpay-agent/internal/types"
)

// handlePredict validates the submitted candidate, forwards it to the
// backend, and maps the outcome kind to a response. Only one prediction may
// be in flight at a time.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !s.predictMu.TryLock() {
		s.errorResponse(w, http.StatusConflict, "a prediction is already in flight")
		return
	}
	defer s.predictMu.Unlock()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidatePredictRequest(string(body)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var input types.CandidateInput
	if err := json.Unmarshal(body, &input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid candidate input: "+err.Error())
		return
	}

	result, err := s.backend.Predict(r.Context(), input)
	if err != nil {
		s.outcomeResponse(w, err)
		return
	}

	resp := map[string]any{
		"predicted_salary_usd": result.PredictedSalaryUSD,
	}

	// Reports are generated only here, in the success branch, so a report
	// can never exist without its prediction.
	if r.URL.Query().Get("report") == "true" {
		rep, err := s.reports.Generate(r.Context(), input, *result)
		if err != nil {
			s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
				"error_kind": "report_generation_error",
				"message":    err.Error(),
			})
			return
		}
		resp["report"] = filepath.Base(rep.Path)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// outcomeResponse maps a prediction outcome error onto an HTTP response. The
// backend status codes are not echoed directly; the kind plus message is the
// contract with the presentation layer.
func (s *Server) outcomeResponse(w http.ResponseWriter, err error) {
	var connErr *backend.ConnectionError
	var authErr *backend.AuthError
	var srvErr *backend.ServerError
	var apiErr *backend.APIError

	resp := map[string]any{"message": err.Error()}

	switch {
	case errors.As(err, &connErr):
		resp["error_kind"] = "connection_error"
	case errors.As(err, &authErr):
		resp["error_kind"] = "auth_error"
		resp["status_code"] = authErr.StatusCode
	case errors.As(err, &srvErr):
		resp["error_kind"] = "server_error"
		resp["status_code"] = srvErr.StatusCode
	case errors.As(err, &apiErr):
		resp["error_kind"] = "api_error"
		resp["status_code"] = apiErr.StatusCode
		if apiErr.Body != nil {
			resp["body"] = apiErr.Body
		}
	default:
		s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
			"error_kind": "internal_error",
			"message":    err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusBadGateway, resp)
}

// handleInsights fetches both analytics panels concurrently. The panels write
// to disjoint response fields, and each degrades independently to its
// unavailable reason.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var (
		summary     *types.AnalyticsSummary
		summaryErr  error
		features    []types.FeatureImportance
		featuresErr error
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		summary, summaryErr = s.backend.FetchSummary(ctx)
		return nil
	})
	g.Go(func() error {
		features, featuresErr = s.backend.FetchExplanations(ctx)
		return nil
	})
	_ = g.Wait()

	resp := map[string]any{}
	if summaryErr != nil {
		resp["summary_unavailable"] = summaryErr.Error()
	} else {
		resp["summary"] = summary
	}
	if featuresErr != nil {
		resp["top_features_unavailable"] = featuresErr.Error()
	} else {
		resp["top_features"] = features
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDownloadReport serves a generated report for one-shot download.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "invalid report name")
		return
	}

	f, err := os.Open(filepath.Join(s.reports.OutputDir, name))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "report not found")
		return
	}
	defer func() { _ = f.Close() }()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = io.Copy(w, f)
}
