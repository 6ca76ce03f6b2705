package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPredictBody = `{
	"age": 28,
	"education": "Bachelors",
	"job_title": "Software Engineer",
	"hours_per_week": 40,
	"gender": "Male",
	"marital_status": "Single"
}`

func TestValidatePredictRequest_Valid(t *testing.T) {
	assert.NoError(t, ValidatePredictRequest(validPredictBody))
}

func TestValidatePredictRequest_MissingField(t *testing.T) {
	body := `{
		"age": 28,
		"education": "Bachelors",
		"job_title": "Software Engineer",
		"hours_per_week": 40,
		"gender": "Male"
	}`

	err := ValidatePredictRequest(body)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "marital_status")
}

func TestValidatePredictRequest_ExtraField(t *testing.T) {
	body := `{
		"age": 28,
		"education": "Bachelors",
		"job_title": "Software Engineer",
		"hours_per_week": 40,
		"gender": "Male",
		"marital_status": "Single",
		"confidence": "High"
	}`

	// The wire contract is exactly six fields; extras are rejected.
	err := ValidatePredictRequest(body)
	require.Error(t, err)
}

func TestValidatePredictRequest_OutOfRangeAge(t *testing.T) {
	body := `{
		"age": 12,
		"education": "Bachelors",
		"job_title": "Software Engineer",
		"hours_per_week": 40,
		"gender": "Male",
		"marital_status": "Single"
	}`

	err := ValidatePredictRequest(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestValidatePredictRequest_NotJSON(t *testing.T) {
	err := ValidatePredictRequest("not json at all")
	require.Error(t, err)
}

func TestValidateAnalyzeResponse(t *testing.T) {
	valid := `{"summary":{"record_count":1200,"average_salary":62000,"max_salary":250000,"min_salary":18000}}`
	assert.NoError(t, ValidateAnalyzeResponse(valid))

	missing := `{"summary":{"record_count":1200}}`
	assert.Error(t, ValidateAnalyzeResponse(missing))
}

func TestValidateExplainResponse(t *testing.T) {
	valid := `{"top_features":[{"feature":"age","importance":0.2}]}`
	assert.NoError(t, ValidateExplainResponse(valid))

	empty := `{"top_features":[]}`
	assert.NoError(t, ValidateExplainResponse(empty))

	wrongShape := `{"top_features":[{"feature":"age"}]}`
	assert.Error(t, ValidateExplainResponse(wrongShape))
}
