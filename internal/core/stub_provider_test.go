package core

import (
	"context"

	"github.com/google/generative-ai-go/genai"

	"brandcraft.io/brandcraft/internal/gateway"
)

// stubProvider is a canned-response gateway.Provider for service tests.
type stubProvider struct {
	textResponse       string
	textErr            error
	structuredResponse string
	structuredErr      error
	imageURI           string
	imageOK            bool
	imageErr           error
	chatReply          string
	chatErr            error

	lastPrompt  string
	lastHistory []gateway.Turn
	lastMessage string
}

func (p *stubProvider) RequestText(ctx context.Context, prompt string) (string, error) {
	p.lastPrompt = prompt
	return p.textResponse, p.textErr
}

func (p *stubProvider) RequestStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	p.lastPrompt = prompt
	return p.structuredResponse, p.structuredErr
}

func (p *stubProvider) RequestImage(ctx context.Context, prompt string, aspectRatio string) (string, bool, error) {
	p.lastPrompt = prompt
	return p.imageURI, p.imageOK, p.imageErr
}

func (p *stubProvider) RequestChatReply(ctx context.Context, history []gateway.Turn, message string) (string, error) {
	p.lastHistory = append([]gateway.Turn(nil), history...)
	p.lastMessage = message
	return p.chatReply, p.chatErr
}
