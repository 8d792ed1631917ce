package knowledge

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedFact is one corpus entry before embedding.
type SeedFact struct {
	Name         string
	Text         string
	IsVegetarian bool
}

// SeedCorpus is the starter ingredient knowledge base.
var SeedCorpus = []SeedFact{
	{"Parmesan", "Parmesan cheese often contains animal rennet and is not vegetarian.", false},
	{"Gelatin", "Gelatin is derived from animal collagen and is not vegetarian.", false},
	{"Tofu", "Tofu is made from soybeans and is vegetarian.", true},
	{"Chicken Stock", "Chicken stock is made from chicken bones and meat, not vegetarian.", false},
	{"Fish Sauce", "Fish sauce is made from fermented fish, not vegetarian.", false},
	{"Worcestershire Sauce", "Worcestershire sauce often contains anchovies (fish).", false},
	{"Lard", "Lard is pig fat, not vegetarian.", false},
	{"Agar Agar", "Agar agar is a plant-based gelatin substitute, vegetarian.", true},
	{"Seitan", "Seitan is wheat gluten, vegetarian meat substitute.", true},
	{"Tempeh", "Tempeh is fermented soy, vegetarian.", true},
}

// Seed embeds the corpus and upserts it into ingredient_facts.
func Seed(ctx context.Context, db *pgxpool.Pool, embedder Embedder) error {
	for _, f := range SeedCorpus {
		vec, err := embedder.Embed(ctx, f.Text)
		if err != nil {
			return fmt.Errorf("embed %q: %w", f.Name, err)
		}

		_, err = db.Exec(ctx, `
			INSERT INTO ingredient_facts (name, fact, is_vegetarian, embedding)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO UPDATE
			SET fact = EXCLUDED.fact,
			    is_vegetarian = EXCLUDED.is_vegetarian,
			    embedding = EXCLUDED.embedding
		`, f.Name, f.Text, f.IsVegetarian, vec)
		if err != nil {
			return fmt.Errorf("upsert %q: %w", f.Name, err)
		}
	}
	return nil
}
