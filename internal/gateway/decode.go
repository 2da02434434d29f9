package gateway

import (
	"encoding/json"
	"log"
	"strings"

	"brandcraft.io/brandcraft/internal/store"
)

// Fallback literals returned when the provider answers without usable text.
// These are contracts with the UI, not error paths.
const (
	ContentFallback   = "Failed to generate content."
	ChatReplyFallback = "I'm sorry, I couldn't process that."
)

// DecodeNameList splits a comma-separated provider response into trimmed
// names. An empty response decodes to an empty list; the provider returning
// fewer or more than the requested 10 names is expected.
func DecodeNameList(text string) []string {
	if text == "" {
		return []string{}
	}
	segments := strings.Split(text, ",")
	names := make([]string, len(segments))
	for i, s := range segments {
		names[i] = strings.TrimSpace(s)
	}
	return names
}

// DecodeContent returns the provider text verbatim, or the content fallback
// literal when the provider returned none.
func DecodeContent(text string) string {
	if text == "" {
		return ContentFallback
	}
	return text
}

// DecodeChatReply returns the provider text verbatim, or the chat fallback
// literal when the provider returned none.
func DecodeChatReply(text string) string {
	if text == "" {
		return ChatReplyFallback
	}
	return text
}

// DecodeSentiment parses the provider's JSON payload into a SentimentResult.
// Missing or malformed text never errors: absent fields keep the defaults
// below (score 0, label Neutral, zeroed breakdown, empty summary) so the
// result is always structurally complete for display code.
func DecodeSentiment(text string) store.SentimentResult {
	result := store.SentimentResult{Label: "Neutral"}
	if text == "" {
		return result
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse sentiment payload (%.80s...): %v", text, err)
		return store.SentimentResult{Label: "Neutral"}
	}
	if result.Label == "" {
		result.Label = "Neutral"
	}
	return result
}
