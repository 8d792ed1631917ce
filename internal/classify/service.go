// Package classify decides, item by item, whether a dish is vegetarian.
// Three tiers, first hit wins: non-vegetarian keywords, vegetarian
// keywords, then knowledge-augmented LLM with a deterministic safe
// default when everything else fails.
package classify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"greenmenu/internal/llm"
	"greenmenu/internal/menu"
)

const (
	nonVegConfidence = 0.95
	vegConfidence    = 0.85

	maxPassages        = 3
	noKnowledgeContext = "No ingredient database available."
	errorReasoning     = "Error during classification"
)

// Retriever serves ranked ingredient-fact passages for a query.
// May be absent or fail; both degrade to the placeholder context.
type Retriever interface {
	Retrieve(ctx context.Context, query string, limit int) ([]string, error)
}

// DishClassifier is the structured-output language-model collaborator.
type DishClassifier interface {
	ClassifyDish(ctx context.Context, name, description, kbContext string) (llm.Verdict, error)
}

type Service struct {
	retriever  Retriever
	classifier DishClassifier
}

// NewService wires the optional collaborators. Either may be nil: a nil
// retriever means no knowledge base, a nil classifier means tier 3
// resolves straight to the safe default.
func NewService(retriever Retriever, classifier DishClassifier) *Service {
	return &Service{retriever: retriever, classifier: classifier}
}

// Classify runs the tier cascade for one item. It never returns an
// error; every failure mode maps to a defined classification. Safe to
// call concurrently: the only shared state is read-only.
func (s *Service) Classify(ctx context.Context, item menu.MenuItem) menu.Classification {
	text := strings.ToLower(item.Name) + " " + strings.ToLower(item.Description)

	for _, kw := range nonVegKeywords {
		if strings.Contains(text, kw) {
			return menu.Classification{
				IsVegetarian: false,
				Confidence:   nonVegConfidence,
				Reasoning:    fmt.Sprintf("Contains non-vegetarian ingredient: '%s'", kw),
				Flags:        []string{},
			}
		}
	}

	for _, kw := range vegKeywords {
		if strings.Contains(text, kw) {
			return menu.Classification{
				IsVegetarian: true,
				Confidence:   vegConfidence,
				Reasoning:    fmt.Sprintf("Contains vegetarian ingredient: '%s'", kw),
				Flags:        []string{},
			}
		}
	}

	return s.classifyWithKnowledge(ctx, item, text)
}

func (s *Service) classifyWithKnowledge(ctx context.Context, item menu.MenuItem, query string) menu.Classification {
	if s.classifier == nil {
		return safeDefault()
	}

	kbContext := noKnowledgeContext
	if s.retriever != nil {
		passages, err := s.retriever.Retrieve(ctx, query, maxPassages)
		switch {
		case err != nil:
			log.Printf("knowledge retrieval failed for %q: %v", item.Name, err)
		case len(passages) > 0:
			kbContext = strings.Join(passages, "\n")
		}
	}

	verdict, err := s.classifier.ClassifyDish(ctx, item.Name, item.Description, kbContext)
	if err != nil {
		log.Printf("classification failed for %q: %v", item.Name, err)
		return safeDefault()
	}

	flags := verdict.Flags
	if flags == nil {
		flags = []string{}
	}

	return menu.Classification{
		IsVegetarian: verdict.IsVegetarian,
		Confidence:   clamp01(verdict.Confidence),
		Reasoning:    verdict.Reasoning,
		Flags:        flags,
	}
}

// safeDefault is the deterministic fallback: non-vegetarian at zero
// confidence. Missing a vegetarian dish beats misleading a vegetarian
// diner, so this must stay exactly as-is.
func safeDefault() menu.Classification {
	return menu.Classification{
		IsVegetarian: false,
		Confidence:   0.0,
		Reasoning:    errorReasoning,
		Flags:        []string{"error"},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
