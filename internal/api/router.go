package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Dashboard
		r.Get("/project", apiHandler.GetActiveProjectHandler)
		r.Get("/projects", apiHandler.ListProjectsHandler)

		// Identity Creator
		r.Post("/identity/names", apiHandler.GenerateNamesHandler)
		r.Post("/identity/logo", apiHandler.GenerateLogoHandler)
		r.Post("/identity/save", apiHandler.SaveProjectHandler)

		// Content Studio
		r.Post("/studio/content", apiHandler.GenerateContentHandler)
		r.Post("/studio/assets", apiHandler.SaveAssetHandler)
		r.Get("/studio/assets", apiHandler.ListAssetsHandler)

		// Sentiment Insights
		r.Post("/insights/sentiment", apiHandler.AnalyzeSentimentHandler)

		// Assistant
		r.Post("/assistant/sessions", apiHandler.CreateSessionHandler)
		r.Get("/assistant/sessions/{sessionID}", apiHandler.GetTranscriptHandler)
		r.Post("/assistant/sessions/{sessionID}/messages", apiHandler.SendMessageHandler)
		r.Post("/assistant/sessions/{sessionID}/reset", apiHandler.ResetSessionHandler)
		r.Get("/assistant/suggestions", apiHandler.SuggestionsHandler)
	})

	return r
}
