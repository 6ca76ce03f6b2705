// Package types provides type definitions for structured data used throughout the SmartPay client.
package types

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Education levels accepted by the prediction backend.
const (
	EducationHighSchool = "High School"
	EducationBachelors  = "Bachelors"
	EducationMasters    = "Masters"
	EducationPhD        = "PhD"
	EducationOther      = "Other"
)

// CandidateInput represents one candidate submission. The JSON tags are the
// wire contract of the predict endpoint; field order here is the enumeration
// order used in generated reports.
type CandidateInput struct {
	Age           int    `json:"age" validate:"required,gte=17,lte=80"`
	Education     string `json:"education" validate:"required,oneof='High School' Bachelors Masters PhD Other"`
	JobTitle      string `json:"job_title" validate:"required,min=1"`
	HoursPerWeek  int    `json:"hours_per_week" validate:"required,gte=10,lte=100"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female Other"`
	MaritalStatus string `json:"marital_status" validate:"required,oneof=Single Married Divorced Other"`
}

// Validate validates the CandidateInput using the validator.
func (c *CandidateInput) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Field is one key/value pair of a candidate submission, keyed by wire name.
type Field struct {
	Key   string
	Value string
}

// Fields returns the input as ordered key/value pairs using the wire field
// names, in declaration order.
func (c *CandidateInput) Fields() []Field {
	return []Field{
		{Key: "age", Value: strconv.Itoa(c.Age)},
		{Key: "education", Value: c.Education},
		{Key: "job_title", Value: c.JobTitle},
		{Key: "hours_per_week", Value: strconv.Itoa(c.HoursPerWeek)},
		{Key: "gender", Value: c.Gender},
		{Key: "marital_status", Value: c.MaritalStatus},
	}
}
