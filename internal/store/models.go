package store

import (
	"strings"
	"time"
)

type BrandProject struct {
	ID          string   `json:"id"` // UUID
	Name        string   `json:"name"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logoUrl,omitempty"` // data URI or empty
	Keywords    []string `json:"keywords"`
	Tone        string   `json:"tone"`
	CreatedAt   string   `json:"createdAt"` // ISO-8601
}

type ContentAsset struct {
	ID        string `json:"id"` // UUID
	Type      string `json:"type"` // "ad", "website" or "social"
	Title     string `json:"title"`
	Content   string `json:"content"`
	ProjectID string `json:"projectId"`
}

type SentimentBreakdown struct {
	Trust        float64 `json:"trust"`
	Excitement   float64 `json:"excitement"`
	Satisfaction float64 `json:"satisfaction"`
}

type SentimentResult struct {
	Score     float64            `json:"score"` // 0-100
	Label     string             `json:"label"` // "Positive", "Neutral" or "Negative"
	Breakdown SentimentBreakdown `json:"breakdown"`
	Summary   string             `json:"summary"`
}

type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SplitKeywords turns the raw comma-separated keyword input into the keyword
// list stored on a project. Each segment is trimmed but empty segments are
// kept, so a trailing comma yields an empty-string keyword. That matches the
// behavior users have relied on since the first release; do not filter here.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, len(parts))
	for i, p := range parts {
		keywords[i] = strings.TrimSpace(p)
	}
	return keywords
}
