package knowledge

import (
	"context"
	"testing"
)

// fakeEmbedder maps known strings to fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vectors[text], nil
}

func staticStore(facts []Fact, embedder Embedder) *Store {
	s := NewStore(nil, embedder)
	s.facts = facts
	s.loaded = true
	return s
}

func TestRetrieveRanksByCosine(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"cheesy pasta": {1, 0, 0},
	}}
	store := staticStore([]Fact{
		{Name: "Tofu", Text: "tofu fact", Embedding: []float32{0, 1, 0}},
		{Name: "Parmesan", Text: "parmesan fact", Embedding: []float32{0.9, 0.1, 0}},
		{Name: "Lard", Text: "lard fact", Embedding: []float32{0.5, 0.5, 0}},
	}, embedder)

	passages, err := store.Retrieve(context.Background(), "cheesy pasta", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(passages) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(passages))
	}
	if passages[0] != "parmesan fact" {
		t.Errorf("expected closest fact first, got %q", passages[0])
	}
	if passages[1] != "lard fact" {
		t.Errorf("expected second-closest fact, got %q", passages[1])
	}
}

func TestRetrieveLimitLargerThanCorpus(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"anything": {1, 0},
	}}
	store := staticStore([]Fact{
		{Name: "Tofu", Text: "tofu fact", Embedding: []float32{1, 0}},
	}, embedder)

	passages, err := store.Retrieve(context.Background(), "anything", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passages) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(passages))
	}
}

func TestStoreUnavailableWithoutDatabase(t *testing.T) {
	store := NewStore(nil, nil)

	_, err := store.Retrieve(context.Background(), "anything", 3)
	if err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	// The failed state is cached; a second call must answer the same way.
	_, err = store.Retrieve(context.Background(), "anything", 3)
	if err != ErrUnavailable {
		t.Fatalf("expected cached ErrUnavailable, got %v", err)
	}
}

func TestCosine(t *testing.T) {
	if got := cosine([]float32{1, 0}, []float32{1, 0}); got < 0.999 {
		t.Errorf("identical vectors should score ~1, got %v", got)
	}
	if got := cosine([]float32{1, 0}, []float32{0, 1}); got != 0 {
		t.Errorf("orthogonal vectors should score 0, got %v", got)
	}
	if got := cosine([]float32{1, 0}, []float32{1, 0, 0}); got != 0 {
		t.Errorf("mismatched lengths should score 0, got %v", got)
	}
	if got := cosine(nil, nil); got != 0 {
		t.Errorf("empty vectors should score 0, got %v", got)
	}
}
