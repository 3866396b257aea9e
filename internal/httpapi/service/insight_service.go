package service

import (
	"context"
	"fmt"

	"reelhub/internal/config"

	gpt "github.com/m-ariany/gpt-chat-client"
)

const insightInstruction = "You are a film curator. Given a description of a user's playlists " +
	"and rated titles, produce a short, readable insight about their taste and a handful of " +
	"watch suggestions. Answer in plain text."

type InsightService interface {
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}

type insightService struct {
	client *gpt.Client
}

func NewInsightService(cfg *config.Config) (InsightService, error) {
	temperature := float32(0.7)
	client, err := gpt.NewClient(gpt.ClientConfig{
		ApiUrl:      cfg.InsightAPIURL,
		ApiKey:      cfg.InsightAPIKey,
		Model:       cfg.InsightModel,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create insight client: %w", err)
	}

	return &insightService{client: client}, nil
}

// GenerateInsight sends the prompt to the generative API and returns the
// text verbatim. Each call clones the client so conversation history never
// leaks between requests.
func (s *insightService) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	client := s.client.Clone()
	client.Instruct(insightInstruction)

	text, err := client.Prompt(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("insight generation failed: %w", err)
	}
	return text, nil
}
