package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"brandcraft.io/brandcraft/internal/config"
)

const (
	textModelName  = "gemini-3-flash-preview"
	imageModelName = "gemini-2.5-flash-image"
	chatModelName  = "gemini-3-pro-preview" // better for complex branding reasoning

	assistantSystemInstruction = "You are BrandCraft Assistant, an expert in branding, marketing, and business strategy. " +
		"Help users brainstorm names, logos, content strategies, and market positioning."
)

// ProviderError is the single error kind surfaced by the gateway. It covers
// transport failures and unusable service responses alike; callers at the
// view boundary convert it to a user-visible message.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Turn is one prior conversation turn as sent to the provider. Role is
// "user" or "model" (the prompt layer maps application roles).
type Turn struct {
	Role string
	Text string
}

// Provider is the capability surface the view services depend on. Gateway is
// the production implementation; tests substitute a stub.
type Provider interface {
	RequestText(ctx context.Context, prompt string) (string, error)
	RequestStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	RequestImage(ctx context.Context, prompt string, aspectRatio string) (string, bool, error)
	RequestChatReply(ctx context.Context, history []Turn, message string) (string, error)
}

// Gateway is the single point of contact with the generative-AI service.
// A fresh client is built for every call so a rotated credential takes
// effect on the very next request. No retries, no timeouts, no backoff:
// transient failures surface immediately as ProviderError.
type Gateway struct {
	// credential returns the API key for the next call. Defaults to the
	// process configuration; overridable for tests.
	credential func() string
}

var _ Provider = (*Gateway)(nil)

func NewGateway() *Gateway {
	return &Gateway{
		credential: func() string { return config.AppConfig.GeminiAPIKey },
	}
}

func (g *Gateway) newClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.credential()))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return client, nil
}

// RequestText asks the text model for a free-text completion. A successful
// call that carries no text returns "" with a nil error; callers supply
// their own fallback string.
func (g *Gateway) RequestText(ctx context.Context, prompt string) (string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", &ProviderError{Op: "text generation", Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(textModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Op: "text generation", Err: err}
	}

	return candidateText(resp), nil
}

// RequestStructured asks the text model for a JSON payload conforming to
// schema and returns the raw text for the caller's decoder. The gateway does
// not guarantee the payload parses or matches the schema.
func (g *Gateway) RequestStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", &ProviderError{Op: "structured generation", Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(textModelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Op: "structured generation", Err: err}
	}

	return candidateText(resp), nil
}

// RequestImage asks the image model for an inline image and returns the
// first image part as a data URI. ok is false, with a nil error, when the
// response carries no image part. The model has no image-config surface in
// this SDK, so the aspect ratio rides along in the prompt text.
func (g *Gateway) RequestImage(ctx context.Context, prompt string, aspectRatio string) (string, bool, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", false, &ProviderError{Op: "image generation", Err: err}
	}
	defer client.Close()

	fullPrompt := prompt
	if aspectRatio != "" {
		fullPrompt = fmt.Sprintf("%s Aspect ratio: %s.", prompt, aspectRatio)
	}

	model := client.GenerativeModel(imageModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", false, &ProviderError{Op: "image generation", Err: err}
	}

	// The response may contain both image and text parts; take the first image.
	for _, part := range candidateParts(resp) {
		if blob, ok := part.(genai.Blob); ok {
			uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(blob.Data)
			return uri, true, nil
		}
	}
	return "", false, nil
}

// RequestChatReply establishes a fresh conversation seeded with the full
// prior transcript plus the assistant persona, sends message, and returns
// the reply text (empty on a textless success). Continuity is reconstructed
// client-side from the transcript on every call; no server-side session is
// reused.
func (g *Gateway) RequestChatReply(ctx context.Context, history []Turn, message string) (string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", &ProviderError{Op: "chat reply", Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(chatModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(assistantSystemInstruction)},
	}

	session := model.StartChat()
	for _, turn := range history {
		session.History = append(session.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", &ProviderError{Op: "chat reply", Err: err}
	}

	return candidateText(resp), nil
}

func candidateParts(resp *genai.GenerateContentResponse) []genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func candidateText(resp *genai.GenerateContentResponse) string {
	parts := candidateParts(resp)
	if len(parts) == 0 {
		log.Println("Gemini response was empty or had no valid candidates/parts.")
		return ""
	}

	var text strings.Builder
	for _, part := range parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		} else {
			log.Printf("Gemini response part was not text: %T", part)
		}
	}
	return text.String()
}
