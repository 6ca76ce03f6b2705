package types

// AnalyticsSummary represents the dataset snapshot returned by the analyze
// endpoint. Values are reported as-is; nothing is recomputed client-side.
type AnalyticsSummary struct {
	RecordCount   int     `json:"record_count"`
	AverageSalary float64 `json:"average_salary"`
	MaxSalary     float64 `json:"max_salary"`
	MinSalary     float64 `json:"min_salary"`
}

// FeatureImportance is one entry of the explainability panel. Entries keep the
// order the backend returned them in.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}
