// Seeds the ingredient knowledge base: embeds the starter corpus and
// upserts it into Postgres. Run once before enabling retrieval.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"greenmenu/internal/db"
	"greenmenu/internal/knowledge"
	"greenmenu/internal/llm"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	gemini := llm.NewGeminiClient()
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Fatal("GEMINI_API_KEY is required to compute embeddings")
	}

	ctx := context.Background()

	pool, err := db.ConnectPostgres(ctx)
	if err != nil {
		log.Fatal("Postgres connection failed:", err)
	}
	defer pool.Close()

	log.Printf("seeding %d ingredient facts", len(knowledge.SeedCorpus))
	if err := knowledge.Seed(ctx, pool, gemini); err != nil {
		log.Fatal("seeding failed:", err)
	}

	log.Println("knowledge base seeded")
}
