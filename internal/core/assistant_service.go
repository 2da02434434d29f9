package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

const assistantGreeting = "Hi! I'm your BrandCraft Assistant. How can I help you build your brand today?"

// quickSuggestions are the canned prompts offered under the chat input.
var quickSuggestions = []string{
	"Suggest brand names",
	"Write a mission statement",
	"Marketing tips",
	"Competitor analysis",
}

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = fmt.Errorf("session not found")

// AssistantService holds chat transcripts in memory, one per session.
// Transcripts are append-only between resets and never persisted; a restart
// discards them, matching the single-browser-session lifetime of the chat.
// The full transcript is resent to the provider on every turn, so
// conversation continuity lives entirely in this map.
type AssistantService struct {
	provider gateway.Provider

	mu       sync.Mutex
	sessions map[string][]store.ChatMessage
}

func NewAssistantService(provider gateway.Provider) *AssistantService {
	return &AssistantService{
		provider: provider,
		sessions: make(map[string][]store.ChatMessage),
	}
}

func greetingMessage() store.ChatMessage {
	return store.ChatMessage{
		Role:      "assistant",
		Text:      assistantGreeting,
		Timestamp: time.Now(),
	}
}

// NewSession creates a session seeded with exactly the fixed greeting.
func (s *AssistantService) NewSession() (string, []store.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = []store.ChatMessage{greetingMessage()}
	return id, s.transcriptLocked(id)
}

// Transcript returns an ordered copy of the session's messages.
func (s *AssistantService) Transcript(sessionID string) ([]store.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}
	return s.transcriptLocked(sessionID), nil
}

// Send appends the user message, asks the provider for a reply seeded with
// the prior transcript, appends and returns the assistant message. On a
// provider failure the user message stays on the transcript and the error
// propagates for the view boundary to report.
func (s *AssistantService) Send(ctx context.Context, sessionID, text string) (*store.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	s.mu.Lock()
	transcript, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	history := gateway.ChatHistory(transcript)
	userMsg := store.ChatMessage{Role: "user", Text: text, Timestamp: time.Now()}
	s.sessions[sessionID] = append(transcript, userMsg)
	s.mu.Unlock()

	reply, err := s.provider.RequestChatReply(ctx, history, text)
	if err != nil {
		return nil, err
	}

	assistantMsg := store.ChatMessage{
		Role:      "assistant",
		Text:      gateway.DecodeChatReply(reply),
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], assistantMsg)
	s.mu.Unlock()

	return &assistantMsg, nil
}

// Reset discards all history for the session, leaving exactly one greeting.
// Irreversible for the session: nothing was persisted.
func (s *AssistantService) Reset(sessionID string) ([]store.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}
	s.sessions[sessionID] = []store.ChatMessage{greetingMessage()}
	return s.transcriptLocked(sessionID), nil
}

// Suggestions returns the quick-prompt tags shown under the chat input.
func (s *AssistantService) Suggestions() []string {
	out := make([]string, len(quickSuggestions))
	copy(out, quickSuggestions)
	return out
}

func (s *AssistantService) transcriptLocked(sessionID string) []store.ChatMessage {
	transcript := s.sessions[sessionID]
	out := make([]store.ChatMessage, len(transcript))
	copy(out, transcript)
	return out
}
