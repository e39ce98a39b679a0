package assistant

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Gemini backs the assistant with the Gemini API. Credentials come from the
// environment (GEMINI_API_KEY), resolved by the genai client itself.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGemini builds a Gemini-backed client for the given model.
func NewGemini(ctx context.Context, model string, log *zap.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{})
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

// Complete runs one generation round trip. Failures are logged and
// converted to the fixed apology string; the caller never sees a raw error.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.log.Warn("assistant call failed", zap.Error(err))
		return Apology, nil
	}
	text := resp.Text()
	if text == "" {
		g.log.Warn("assistant returned empty response")
		return Apology, nil
	}
	return text, nil
}
