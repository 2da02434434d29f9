package gateway

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"brandcraft.io/brandcraft/internal/store"
)

// Prompt builders are pure: structured user intent in, request text out.
// Wording is part of the product and tuned against the live models; change
// it deliberately.

func NamesPrompt(keywords []string, tone string) string {
	return fmt.Sprintf(
		"Generate 10 creative and catchy brand names for a business in the niche of: %s. The brand tone should be %s. Return only a comma-separated list of names.",
		strings.Join(keywords, ", "), tone)
}

func LogoPrompt(brandName, description string) string {
	return fmt.Sprintf(
		"A clean, modern, professional minimalist logo for a brand named %q. Description: %s. The logo should be iconic, symmetrical, and look like a corporate brand identity.",
		brandName, description)
}

func ContentPrompt(contentType, brandDescription, audience string) string {
	return fmt.Sprintf(
		"Write high-converting %s content for a brand described as: %q. Targeted audience: %s. Make it engaging and professional.",
		contentType, brandDescription, audience)
}

func SentimentPrompt(feedback string) string {
	return fmt.Sprintf(
		"Analyze the sentiment of this brand feedback: %q. Provide a structured JSON analysis.",
		feedback)
}

// SentimentSchema describes the JSON payload the sentiment analysis must
// return. Every field is required so the decoder can assume presence unless
// the provider violates the contract.
func SentimentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score": {Type: genai.TypeNumber, Description: "Sentiment score from 0 to 100"},
			"label": {Type: genai.TypeString, Description: "One of: Positive, Neutral, Negative"},
			"breakdown": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"trust":        {Type: genai.TypeNumber},
					"excitement":   {Type: genai.TypeNumber},
					"satisfaction": {Type: genai.TypeNumber},
				},
				Required: []string{"trust", "excitement", "satisfaction"},
			},
			"summary": {Type: genai.TypeString},
		},
		Required: []string{"score", "label", "breakdown", "summary"},
	}
}

// ChatHistory maps a transcript to provider turns, preserving order.
// Assistant messages travel under the provider's "model" role.
func ChatHistory(messages []store.ChatMessage) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		turns = append(turns, Turn{Role: role, Text: msg.Text})
	}
	return turns
}
