// Package pipeline runs the menu processing stages end to end:
// normalize → parse → classify fan-out → aggregate.
package pipeline

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"greenmenu/internal/menu"
)

// Normalizer repairs OCR noise; always returns usable text.
type Normalizer interface {
	Normalize(ctx context.Context, raw string) string
}

// ItemClassifier decides vegetarian status for one item; never errors.
type ItemClassifier interface {
	Classify(ctx context.Context, item menu.MenuItem) menu.Classification
}

type Service struct {
	normalizer Normalizer
	classifier ItemClassifier
}

func NewService(normalizer Normalizer, classifier ItemClassifier) *Service {
	return &Service{normalizer: normalizer, classifier: classifier}
}

// Process turns raw recognized text into the final result. It never
// fails: unparseable input yields an empty, zero-sum result. Items are
// classified concurrently and paired back by index, so the aggregate
// sees them in original parse order regardless of completion order.
func (s *Service) Process(ctx context.Context, rawText, requestID string) menu.MenuProcessingResult {
	cleaned := s.normalizer.Normalize(ctx, rawText)

	items := menu.ParseMenuText(cleaned)
	log.Printf("[%s] parsed %d items", requestID, len(items))

	classified := make([]menu.ClassifiedMenuItem, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		classified[i].MenuItem = item
		g.Go(func() error {
			c := s.classifier.Classify(gctx, item)
			classified[i].Classification = &c
			return nil
		})
	}
	// Classify never errors; Wait is only the fan-in barrier.
	_ = g.Wait()

	return menu.Aggregate(classified, requestID)
}
