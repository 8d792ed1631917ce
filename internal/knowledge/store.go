// Package knowledge is the ingredient fact store backing the
// classification engine's retrieval tier. Facts live in Postgres with
// pre-computed embeddings; queries are embedded on demand and ranked by
// cosine similarity in process (the corpus is small).
package knowledge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable means the knowledge base cannot serve retrievals.
// The state is cached after the first failure so every classification
// call doesn't repeat a failing round-trip.
var ErrUnavailable = errors.New("knowledge: ingredient database unavailable")

// Embedder turns text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Fact is one ingredient statement with its embedding.
type Fact struct {
	Name         string
	Text         string
	IsVegetarian bool
	Embedding    []float32
}

type Store struct {
	db       *pgxpool.Pool
	embedder Embedder

	mu          sync.Mutex
	loaded      bool
	unavailable bool
	facts       []Fact
}

// NewStore wires the store. Either dependency may be nil; the store
// then reports unavailable on first use.
func NewStore(db *pgxpool.Pool, embedder Embedder) *Store {
	return &Store{db: db, embedder: embedder}
}

// Retrieve returns up to limit fact texts ranked by similarity to the
// query, best first.
func (s *Store) Retrieve(ctx context.Context, query string, limit int) ([]string, error) {
	facts, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, 0, len(facts))
	for _, f := range facts {
		ranked = append(ranked, scored{text: f.Text, score: cosine(queryVec, f.Embedding)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	passages := make([]string, 0, limit)
	for _, r := range ranked[:limit] {
		passages = append(passages, r.text)
	}
	return passages, nil
}

// corpus loads the fact table once. A failed load marks the store
// unavailable for the lifetime of the process.
func (s *Store) corpus(ctx context.Context) ([]Fact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable {
		return nil, ErrUnavailable
	}
	if s.loaded {
		return s.facts, nil
	}
	if s.db == nil || s.embedder == nil {
		s.unavailable = true
		return nil, ErrUnavailable
	}

	rows, err := s.db.Query(ctx, `
		SELECT name, fact, is_vegetarian, embedding
		FROM ingredient_facts
		ORDER BY id
	`)
	if err != nil {
		log.Printf("knowledge base load failed, disabling retrieval: %v", err)
		s.unavailable = true
		return nil, ErrUnavailable
	}
	defer rows.Close()

	var facts []Fact
	for rows.Next() {
		var f Fact
		if err := rows.Scan(&f.Name, &f.Text, &f.IsVegetarian, &f.Embedding); err != nil {
			log.Printf("knowledge base scan failed, disabling retrieval: %v", err)
			s.unavailable = true
			return nil, ErrUnavailable
		}
		facts = append(facts, f)
	}

	if len(facts) == 0 {
		log.Println("knowledge base empty, disabling retrieval (run cmd/seed first)")
		s.unavailable = true
		return nil, ErrUnavailable
	}

	s.facts = facts
	s.loaded = true
	return s.facts, nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
