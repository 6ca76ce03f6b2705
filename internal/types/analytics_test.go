package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsSummary_Decode(t *testing.T) {
	body := `{"record_count":1200,"average_salary":62000,"max_salary":250000,"min_salary":18000}`

	var summary AnalyticsSummary
	require.NoError(t, json.Unmarshal([]byte(body), &summary))

	assert.Equal(t, 1200, summary.RecordCount)
	assert.Equal(t, 62000.0, summary.AverageSalary)
	assert.Equal(t, 250000.0, summary.MaxSalary)
	assert.Equal(t, 18000.0, summary.MinSalary)
}

func TestFeatureImportance_OrderPreserved(t *testing.T) {
	body := `[{"feature":"job_title","importance":0.41},{"feature":"age","importance":0.22},{"feature":"education","importance":0.18}]`

	var features []FeatureImportance
	require.NoError(t, json.Unmarshal([]byte(body), &features))

	require.Len(t, features, 3)
	// Backend order is kept; no client-side re-sorting.
	assert.Equal(t, "job_title", features[0].Feature)
	assert.Equal(t, "age", features[1].Feature)
	assert.Equal(t, "education", features[2].Feature)
}
