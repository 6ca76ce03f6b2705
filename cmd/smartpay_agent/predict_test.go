package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPredictBackend(t *testing.T, url string) {
	t.Helper()
	oldURL, oldCfg, oldKey := predictBackendURL, predictConfigPath, predictAPIKey
	predictBackendURL = url
	predictConfigPath = ""
	predictAPIKey = ""
	predictCmd.SetContext(context.Background())
	t.Cleanup(func() {
		predictBackendURL, predictConfigPath, predictAPIKey = oldURL, oldCfg, oldKey
	})
}

func TestRunPredict_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predicted_salary_usd": 85432.10}`))
	}))
	defer ts.Close()
	setPredictBackend(t, ts.URL)

	require.NoError(t, runPredict(predictCmd, nil))
}

func TestRunPredict_BackendFailurePrintsOnce(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer ts.Close()
	setPredictBackend(t, ts.URL)

	// The outcome box already explained the failure; the command signals
	// it through the sentinel so main does not print the error again.
	err := runPredict(predictCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSilent)
}

func TestRootCmd_SilencesCobraErrorOutput(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}
