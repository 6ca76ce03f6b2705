package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() CandidateInput {
	return CandidateInput{
		Age:           28,
		Education:     EducationBachelors,
		JobTitle:      "Software Engineer",
		HoursPerWeek:  40,
		Gender:        "Male",
		MaritalStatus: "Single",
	}
}

func TestCandidateInput_Validate_Valid(t *testing.T) {
	input := validCandidate()
	assert.NoError(t, input.Validate())
}

func TestCandidateInput_Validate_AgeBounds(t *testing.T) {
	input := validCandidate()
	input.Age = 16
	assert.Error(t, input.Validate())

	input.Age = 17
	assert.NoError(t, input.Validate())

	input.Age = 80
	assert.NoError(t, input.Validate())

	input.Age = 81
	assert.Error(t, input.Validate())
}

func TestCandidateInput_Validate_HoursBounds(t *testing.T) {
	input := validCandidate()
	input.HoursPerWeek = 9
	assert.Error(t, input.Validate())

	input.HoursPerWeek = 100
	assert.NoError(t, input.Validate())

	input.HoursPerWeek = 101
	assert.Error(t, input.Validate())
}

func TestCandidateInput_Validate_EmptyJobTitle(t *testing.T) {
	input := validCandidate()
	input.JobTitle = ""
	assert.Error(t, input.Validate())
}

func TestCandidateInput_Validate_Enums(t *testing.T) {
	input := validCandidate()
	input.Education = "High School"
	assert.NoError(t, input.Validate())

	input.Education = "Kindergarten"
	assert.Error(t, input.Validate())

	input = validCandidate()
	input.Gender = "Unknown"
	assert.Error(t, input.Validate())

	input = validCandidate()
	input.MaritalStatus = "Complicated"
	assert.Error(t, input.Validate())
}

func TestCandidateInput_WireFields(t *testing.T) {
	input := validCandidate()

	data, err := json.Marshal(input)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	// Exactly the six documented fields, with matching values.
	assert.Len(t, wire, 6)
	assert.Equal(t, float64(28), wire["age"])
	assert.Equal(t, "Bachelors", wire["education"])
	assert.Equal(t, "Software Engineer", wire["job_title"])
	assert.Equal(t, float64(40), wire["hours_per_week"])
	assert.Equal(t, "Male", wire["gender"])
	assert.Equal(t, "Single", wire["marital_status"])
}

func TestCandidateInput_FieldsOrder(t *testing.T) {
	input := validCandidate()
	fields := input.Fields()

	require.Len(t, fields, 6)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"age", "education", "job_title", "hours_per_week", "gender", "marital_status"}, keys)
	assert.Equal(t, "28", fields[0].Value)
	assert.Equal(t, "40", fields[3].Value)
}
