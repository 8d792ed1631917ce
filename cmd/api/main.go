package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"greenmenu/internal/classify"
	"greenmenu/internal/db"
	"greenmenu/internal/knowledge"
	"greenmenu/internal/llm"
	"greenmenu/internal/normalize"
	"greenmenu/internal/ocr"
	"greenmenu/internal/pipeline"
	"greenmenu/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	ctx := context.Background()

	// ───────────────────────── LLM ─────────────────────────
	// Every external collaborator is optional: the pipeline degrades
	// instead of refusing to start.
	gemini := llm.NewGeminiClient()

	var corrector normalize.Corrector
	var classifier classify.DishClassifier
	if gemini.Configured() {
		corrector = gemini
		classifier = gemini
	} else {
		log.Println("GEMINI_API_KEY/GEMINI_MODEL not set: OCR cleanup and LLM classification disabled")
	}

	// ───────────────────────── KNOWLEDGE BASE ─────────────────────────
	var retriever classify.Retriever
	pool, err := db.ConnectPostgres(ctx)
	if err != nil {
		log.Printf("knowledge base disabled: %v", err)
	} else {
		defer pool.Close()
		retriever = knowledge.NewStore(pool, gemini)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var archiver pipeline.Archiver
	if storage.Configured() {
		r2, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Printf("R2 archive disabled: %v", err)
		} else {
			archiver = r2
		}
	}

	// ───────────────────────── PIPELINE ─────────────────────────
	normalizer := normalize.NewService(corrector)
	classifySvc := classify.NewService(retriever, classifier)
	pipelineSvc := pipeline.NewService(normalizer, classifySvc)
	handler := pipeline.NewHandler(pipelineSvc, ocr.NewService(), archiver)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/process-menu", handler.ProcessMenu)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("failed to start server:", err)
	}
}
