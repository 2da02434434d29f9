package core

import (
	"context"
	"fmt"

	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

// InsightService backs the Sentiment Insights view. Results are produced
// fresh per call and never persisted.
type InsightService struct {
	provider gateway.Provider
}

func NewInsightService(provider gateway.Provider) *InsightService {
	return &InsightService{provider: provider}
}

// Analyze runs sentiment analysis over a raw feedback blob. The decoder
// guarantees a structurally complete result even when the provider returns
// malformed JSON; only a failed call errors.
func (s *InsightService) Analyze(ctx context.Context, feedback string) (*store.SentimentResult, error) {
	if feedback == "" {
		return nil, fmt.Errorf("feedback text is required")
	}

	payload, err := s.provider.RequestStructured(ctx, gateway.SentimentPrompt(feedback), gateway.SentimentSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to analyze sentiment: %w", err)
	}

	result := gateway.DecodeSentiment(payload)
	return &result, nil
}
