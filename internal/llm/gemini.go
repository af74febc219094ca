// Package llm wraps the Gemini API behind the two generation calls the
// caption service needs.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/captionsmith/backend/internal/config"
)

type Gemini struct {
	client  *genai.Client
	model   string
	genConf *genai.GenerateContentConfig
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	temperature := cfg.Temperature
	topP := cfg.TopP
	return &Gemini{
		client: client,
		model:  cfg.Model,
		genConf: &genai.GenerateContentConfig{
			Temperature:     &temperature,
			TopP:            &topP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}, nil
}

// GenerateText sends a text-only prompt and returns the raw model text.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.genConf)
	if err != nil {
		return "", fmt.Errorf("gemini text generation: %w", err)
	}
	return result.Text(), nil
}

// GenerateVision sends a prompt together with inline image bytes.
func (g *Gemini) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		}},
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.genConf)
	if err != nil {
		return "", fmt.Errorf("gemini vision generation: %w", err)
	}
	return result.Text(), nil
}

// Ping issues a trivial generation to confirm the API key works.
func (g *Gemini) Ping(ctx context.Context) error {
	if _, err := g.GenerateText(ctx, "Hello"); err != nil {
		return fmt.Errorf("gemini ping: %w", err)
	}
	return nil
}
