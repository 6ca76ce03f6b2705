// Package schemas embeds the JSON Schemas of the backend wire contract and
// provides validation against them.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed predict_request.schema.json
var predictRequestSchema string

//go:embed analyze_response.schema.json
var analyzeResponseSchema string

//go:embed explain_response.schema.json
var explainResponseSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidatePredictRequest validates a predict request body against the wire
// contract: exactly the six documented fields with matching types and ranges.
func ValidatePredictRequest(jsonContent string) error {
	return validateString("predict_request", predictRequestSchema, jsonContent)
}

// ValidateAnalyzeResponse validates an analyze success body.
func ValidateAnalyzeResponse(jsonContent string) error {
	return validateString("analyze_response", analyzeResponseSchema, jsonContent)
}

// ValidateExplainResponse validates an explain success body.
func ValidateExplainResponse(jsonContent string) error {
	return validateString("explain_response", explainResponseSchema, jsonContent)
}

// validateString validates JSON string content against schema string content
func validateString(name, schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Schema:  name,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
