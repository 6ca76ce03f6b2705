package types

// PredictionResult represents a successful prediction from the backend.
// A missing predicted_salary_usd field decodes to 0 rather than failing the
// request; the backend substitutes zero instead of signaling malformed data.
type PredictionResult struct {
	PredictedSalaryUSD float64 `json:"predicted_salary_usd"`
}
