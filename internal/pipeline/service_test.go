package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"greenmenu/internal/menu"
)

type identityNormalizer struct{}

func (identityNormalizer) Normalize(ctx context.Context, raw string) string { return raw }

// keywordFake classifies by name, non-vegetarian unless marked veg.
type keywordFake struct {
	veg map[string]bool
}

func (k *keywordFake) Classify(ctx context.Context, item menu.MenuItem) menu.Classification {
	if k.veg[item.Name] {
		return menu.Classification{IsVegetarian: true, Confidence: 0.85, Reasoning: "veg keyword", Flags: []string{}}
	}
	return menu.Classification{IsVegetarian: false, Confidence: 0.95, Reasoning: "non-veg keyword", Flags: []string{}}
}

func TestProcessEndToEnd(t *testing.T) {
	s := NewService(identityNormalizer{}, &keywordFake{veg: map[string]bool{"Грильовані овочі": true}})

	text := "MENU\nСтейк з яловичини 450\nГрильовані овочі 210\n"
	result := s.Process(context.Background(), text, "req-1")

	if len(result.VegetarianItems) != 1 {
		t.Fatalf("expected exactly 1 vegetarian item, got %d", len(result.VegetarianItems))
	}
	if result.VegetarianItems[0].Name != "Грильовані овочі" {
		t.Errorf("unexpected vegetarian item: %q", result.VegetarianItems[0].Name)
	}
	if result.TotalSum != 210 {
		t.Errorf("expected total 210, got %d", result.TotalSum)
	}
	if result.UncertaintyCard != nil {
		t.Errorf("keyword-tier confidences must not produce a card, got %+v", result.UncertaintyCard)
	}
	if result.RequestID != "req-1" {
		t.Errorf("expected request id passed through, got %q", result.RequestID)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	s := NewService(identityNormalizer{}, &keywordFake{})

	result := s.Process(context.Background(), "", "req-2")

	if len(result.VegetarianItems) != 0 || result.TotalSum != 0 {
		t.Fatalf("expected empty zero-sum result, got %+v", result)
	}
}

// slowFake finishes in reverse submission order to prove results are
// paired by index, not by arrival.
type slowFake struct{}

func (slowFake) Classify(ctx context.Context, item menu.MenuItem) menu.Classification {
	if item.Name == "First Dish" {
		time.Sleep(20 * time.Millisecond)
	}
	return menu.Classification{
		IsVegetarian: true,
		Confidence:   0.85,
		Reasoning:    "about " + item.Name,
		Flags:        []string{},
	}
}

func TestProcessPairsResultsByIndex(t *testing.T) {
	s := NewService(identityNormalizer{}, slowFake{})

	result := s.Process(context.Background(), "First Dish 10\nSecond Dish 20", "req-3")

	if len(result.VegetarianItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.VegetarianItems))
	}
	for _, item := range result.VegetarianItems {
		if !strings.Contains(item.Classification.Reasoning, item.Name) {
			t.Errorf("classification for %q got swapped: %q", item.Name, item.Classification.Reasoning)
		}
	}
	if result.VegetarianItems[0].Name != "First Dish" {
		t.Errorf("parse order not preserved: %q first", result.VegetarianItems[0].Name)
	}
}

type upcaseNormalizer struct{}

func (upcaseNormalizer) Normalize(ctx context.Context, raw string) string {
	return strings.ReplaceAll(raw, "Бургер", "Burger")
}

func TestProcessUsesNormalizedText(t *testing.T) {
	s := NewService(upcaseNormalizer{}, &keywordFake{veg: map[string]bool{"Burger": true}})

	result := s.Process(context.Background(), "Бургер 12", "req-4")

	if len(result.VegetarianItems) != 1 || result.VegetarianItems[0].Name != "Burger" {
		t.Fatalf("expected parser to see normalized text, got %+v", result.VegetarianItems)
	}
}
