// Package normalize repairs OCR noise in raw menu text before parsing.
// It is strictly fail-open: downstream parsing never depends on the
// correction call succeeding.
package normalize

import (
	"context"
	"log"
)

// Corrector is the outbound text-correction collaborator.
type Corrector interface {
	CorrectText(ctx context.Context, raw string) (string, error)
}

type Service struct {
	corrector Corrector
}

// NewService wires the correction collaborator. A nil corrector means
// correction is not configured; Normalize then behaves as identity.
func NewService(corrector Corrector) *Service {
	return &Service{corrector: corrector}
}

// Normalize returns the corrected text, or the input unchanged when
// correction is unconfigured or fails. Single attempt, no retries.
func (s *Service) Normalize(ctx context.Context, raw string) string {
	if s.corrector == nil {
		return raw
	}

	corrected, err := s.corrector.CorrectText(ctx, raw)
	if err != nil {
		log.Printf("ocr cleanup failed, keeping raw text: %v", err)
		return raw
	}

	return corrected
}
