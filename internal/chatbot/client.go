package chatbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrUnavailable indicates the AI integration is not configured.
var ErrUnavailable = errors.New("ai service is not available")

// Completer is the opaque AI completion interface the chatbot and the
// assistant widgets call. Prompt content is the caller's concern.
type Completer interface {
	Complete(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// GeminiCompleter implements Completer on the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a completer for the given model name.
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

// Complete sends a single-turn generation request and concatenates the
// text parts of the first candidate.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt, systemInstruction string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}

// Close releases the underlying client.
func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}
