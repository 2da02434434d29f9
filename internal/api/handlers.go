package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandcraft.io/brandcraft/internal/core"
	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

type APIHandler struct {
	identity  *core.IdentityService
	studio    *core.StudioService
	insights  *core.InsightService
	assistant *core.AssistantService
}

func NewAPIHandler(identity *core.IdentityService, studio *core.StudioService, insights *core.InsightService, assistant *core.AssistantService) *APIHandler {
	return &APIHandler{
		identity:  identity,
		studio:    studio,
		insights:  insights,
		assistant: assistant,
	}
}

// writeServiceError converts a service failure into the view-boundary
// response: provider failures become 502 with a user-facing message, input
// validation failures become 400. Nothing propagates further.
func writeServiceError(w http.ResponseWriter, err error, userMessage string) {
	var provErr *gateway.ProviderError
	if errors.As(err, &provErr) {
		log.Printf("Provider failure: %v", err)
		http.Error(w, userMessage, http.StatusBadGateway)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// Dashboard

func (h *APIHandler) GetActiveProjectHandler(w http.ResponseWriter, r *http.Request) {
	project, err := h.identity.ActiveProject()
	if err != nil {
		log.Printf("Error loading active project: %v", err)
		http.Error(w, "Failed to load active project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "No active project", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(project)
}

func (h *APIHandler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := h.identity.Projects()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		http.Error(w, "Failed to list projects", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []store.BrandProject{}
	}
	json.NewEncoder(w).Encode(projects)
}

// Identity Creator

type GenerateNamesRequest struct {
	Keywords string `json:"keywords"`
	Tone     string `json:"tone"`
}

type GenerateNamesResponse struct {
	Names []string `json:"names"`
}

func (h *APIHandler) GenerateNamesHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateNamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	names, err := h.identity.GenerateNames(r.Context(), req.Keywords, req.Tone)
	if err != nil {
		writeServiceError(w, err, "Failed to generate names. Check your API key.")
		return
	}
	json.NewEncoder(w).Encode(GenerateNamesResponse{Names: names})
}

type GenerateLogoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GenerateLogoResponse struct {
	LogoURL *string `json:"logoUrl"` // null when the provider returned no image
}

func (h *APIHandler) GenerateLogoHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateLogoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	uri, ok, err := h.identity.GenerateLogo(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err, "Failed to generate logo. Check your API key.")
		return
	}

	resp := GenerateLogoResponse{}
	if ok {
		resp.LogoURL = &uri
	}
	json.NewEncoder(w).Encode(resp)
}

type SaveProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"` // raw comma-separated input
	Tone        string `json:"tone"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

func (h *APIHandler) SaveProjectHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.identity.SaveProject(r.Context(), req.Name, req.Description, req.Keywords, req.Tone, req.LogoURL)
	if err != nil {
		writeServiceError(w, err, "Failed to save project.")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

// Content Studio

type GenerateContentRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
}

type GenerateContentResponse struct {
	Content string `json:"content"`
}

func (h *APIHandler) GenerateContentHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	content, err := h.studio.GenerateContent(r.Context(), req.Type, req.Description, req.Audience)
	if err != nil {
		writeServiceError(w, err, "Failed to generate content. Check your API key.")
		return
	}
	json.NewEncoder(w).Encode(GenerateContentResponse{Content: content})
}

type SaveAssetRequest struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ProjectID string `json:"projectId"`
}

func (h *APIHandler) SaveAssetHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	asset, err := h.studio.SaveAsset(r.Context(), req.Type, req.Title, req.Content, req.ProjectID)
	if err != nil {
		writeServiceError(w, err, "Failed to save asset.")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(asset)
}

func (h *APIHandler) ListAssetsHandler(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		http.Error(w, "projectId query parameter is required", http.StatusBadRequest)
		return
	}

	assets, err := h.studio.AssetsByProject(projectID)
	if err != nil {
		log.Printf("Error listing assets for project %s: %v", projectID, err)
		http.Error(w, "Failed to list assets", http.StatusInternalServerError)
		return
	}
	if assets == nil {
		assets = []store.ContentAsset{}
	}
	json.NewEncoder(w).Encode(assets)
}

// Sentiment Insights

type AnalyzeSentimentRequest struct {
	Feedback string `json:"feedback"`
}

func (h *APIHandler) AnalyzeSentimentHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeSentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.insights.Analyze(r.Context(), req.Feedback)
	if err != nil {
		writeServiceError(w, err, "Analysis failed.")
		return
	}
	json.NewEncoder(w).Encode(result)
}

// Assistant

type SessionResponse struct {
	ID       string              `json:"id"`
	Messages []store.ChatMessage `json:"messages"`
}

func (h *APIHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, messages := h.assistant.NewSession()
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SessionResponse{ID: id, Messages: messages})
}

func (h *APIHandler) GetTranscriptHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.assistant.Transcript(sessionID)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(SessionResponse{ID: sessionID, Messages: messages})
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

func (h *APIHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.assistant.Send(r.Context(), sessionID, req.Text)
	if err != nil {
		if errors.Is(err, core.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		writeServiceError(w, err, "Sorry, I encountered an error. Please try again.")
		return
	}
	json.NewEncoder(w).Encode(reply)
}

func (h *APIHandler) ResetSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.assistant.Reset(sessionID)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(SessionResponse{ID: sessionID, Messages: messages})
}

func (h *APIHandler) SuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.assistant.Suggestions())
}
