package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

func TestAnalyze(t *testing.T) {
	provider := &stubProvider{
		structuredResponse: `{"score":82,"label":"Positive","breakdown":{"trust":78,"excitement":85,"satisfaction":80},"summary":"Customers love it."}`,
	}
	svc := NewInsightService(provider)

	result, err := svc.Analyze(context.Background(), "Great product, fast shipping!")
	require.NoError(t, err)
	assert.Equal(t, 82.0, result.Score)
	assert.Equal(t, "Positive", result.Label)
	assert.Equal(t, store.SentimentBreakdown{Trust: 78, Excitement: 85, Satisfaction: 80}, result.Breakdown)
	assert.Contains(t, provider.lastPrompt, "Great product, fast shipping!")
}

func TestAnalyzeMalformedPayloadFallsBack(t *testing.T) {
	provider := &stubProvider{structuredResponse: "not json at all"}
	svc := NewInsightService(provider)

	result, err := svc.Analyze(context.Background(), "meh")
	require.NoError(t, err)
	assert.Equal(t, &store.SentimentResult{Label: "Neutral"}, result)
}

func TestAnalyzeRequiresFeedback(t *testing.T) {
	svc := NewInsightService(&stubProvider{})

	_, err := svc.Analyze(context.Background(), "")
	require.Error(t, err)
}

func TestAnalyzeProviderFailurePropagates(t *testing.T) {
	provider := &stubProvider{structuredErr: &gateway.ProviderError{Op: "structured generation", Err: errors.New("boom")}}
	svc := NewInsightService(provider)

	_, err := svc.Analyze(context.Background(), "feedback")
	var provErr *gateway.ProviderError
	require.ErrorAs(t, err, &provErr)
}
