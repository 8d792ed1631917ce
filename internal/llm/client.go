package llm

import "errors"

// ErrNotConfigured is returned when no Gemini credentials are present.
// Callers treat this as a degraded mode, not a failure.
var ErrNotConfigured = errors.New("llm: GEMINI_API_KEY or GEMINI_MODEL not set")

// Verdict is the structured payload the classification model must return.
type Verdict struct {
	IsVegetarian bool     `json:"is_vegetarian"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	Flags        []string `json:"flags"`
}
