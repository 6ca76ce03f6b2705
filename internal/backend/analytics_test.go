package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSummary_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		_, _ = w.Write([]byte(`{"summary":{"record_count":1200,"average_salary":62000,"max_salary":250000,"min_salary":18000}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	summary, err := client.FetchSummary(context.Background())
	require.NoError(t, err)

	// Fields match the backend exactly; nothing recomputed client-side.
	assert.Equal(t, 1200, summary.RecordCount)
	assert.Equal(t, 62000.0, summary.AverageSalary)
	assert.Equal(t, 250000.0, summary.MaxSalary)
	assert.Equal(t, 18000.0, summary.MinSalary)
}

func TestFetchSummary_NonOKCollapsesToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	_, err := client.FetchSummary(context.Background())
	require.Error(t, err)

	var unavailable *Unavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Reason, "503")
}

func TestFetchSummary_ConnectionFailureCollapsesToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient(t, serverURL, nil)
	_, err := client.FetchSummary(context.Background())
	require.Error(t, err)

	var unavailable *Unavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestFetchSummary_BadJSONCollapsesToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	_, err := client.FetchSummary(context.Background())
	require.Error(t, err)

	var unavailable *Unavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Reason, "failed to decode")
}

func TestFetchExplanations_OrderPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/explain", r.URL.Path)
		_, _ = w.Write([]byte(`{"top_features":[{"feature":"job_title","importance":0.41},{"feature":"age","importance":0.22}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	features, err := client.FetchExplanations(context.Background())
	require.NoError(t, err)

	require.Len(t, features, 2)
	assert.Equal(t, "job_title", features[0].Feature)
	assert.Equal(t, 0.41, features[0].Importance)
	assert.Equal(t, "age", features[1].Feature)
}

func TestFetchExplanations_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"top_features":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	features, err := client.FetchExplanations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestFetchExplanations_APIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		_, _ = w.Write([]byte(`{"top_features":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, &Options{APIKey: "secret-key"})
	_, err := client.FetchExplanations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
}
