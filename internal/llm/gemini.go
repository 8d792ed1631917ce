package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultEmbedModel = "text-embedding-004"

type GeminiClient struct {
	apiKey     string
	model      string
	embedModel string
}

func NewGeminiClient() *GeminiClient {
	embedModel := os.Getenv("GEMINI_EMBED_MODEL")
	if embedModel == "" {
		embedModel = defaultEmbedModel
	}
	return &GeminiClient{
		apiKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		model:      strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		embedModel: embedModel,
	}
}

// Configured reports whether the client can reach Gemini at all.
func (g *GeminiClient) Configured() bool {
	return g.apiKey != "" && g.model != ""
}

// CorrectText asks Gemini to repair OCR damage in menu text while
// keeping line structure and digits untouched. Single attempt; callers
// fall back to the raw text on any error.
func (g *GeminiClient) CorrectText(ctx context.Context, raw string) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(correctionSystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(buildCorrectionPrompt(raw)))
	if err != nil {
		return "", fmt.Errorf("gemini correct: %w", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return "", errors.New("gemini correct: empty response")
	}

	return strings.TrimSpace(txt), nil
}

// ClassifyDish asks Gemini for a structured vegetarian verdict grounded
// on retrieved knowledge-base passages. The response is sanitized and
// schema-checked; anything undecodable is an error so callers can apply
// the safe default.
func (g *GeminiClient) ClassifyDish(ctx context.Context, name, description, kbContext string) (Verdict, error) {
	if !g.Configured() {
		return Verdict{}, ErrNotConfigured
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return Verdict{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(classifySystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(buildClassifyPrompt(name, description, kbContext)))
	if err != nil {
		return Verdict{}, fmt.Errorf("gemini classify: %w", err)
	}

	txt := StripCodeFences(firstText(resp))
	if txt == "" {
		return Verdict{}, errors.New("gemini classify: empty response")
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(txt), &verdict); err != nil {
		return Verdict{}, fmt.Errorf("gemini classify: bad JSON: %w", err)
	}
	if verdict.Reasoning == "" {
		return Verdict{}, errors.New("gemini classify: missing reasoning")
	}

	return verdict, nil
}

// Embed returns the embedding vector for a piece of ingredient text.
func (g *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if g.apiKey == "" {
		return nil, ErrNotConfigured
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	em := cl.EmbeddingModel(g.embedModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, errors.New("gemini embed: empty embedding")
	}

	return res.Embedding.Values, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok && strings.TrimSpace(string(t)) != "" {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
