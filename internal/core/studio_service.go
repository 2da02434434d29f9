package core

import (
	"context"
	"fmt"

	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

var validAssetTypes = map[string]bool{
	"ad":      true,
	"website": true,
	"social":  true,
}

// StudioService backs the Content Studio: marketing copy generation and
// asset persistence.
type StudioService struct {
	provider gateway.Provider
	dbStore  store.ProjectStore
}

func NewStudioService(provider gateway.Provider, dbStore store.ProjectStore) *StudioService {
	return &StudioService{
		provider: provider,
		dbStore:  dbStore,
	}
}

// GenerateContent asks the provider for copy of the given type. A textless
// success decodes to the content fallback literal rather than an error.
func (s *StudioService) GenerateContent(ctx context.Context, contentType, brandDescription, audience string) (string, error) {
	if contentType == "" || brandDescription == "" {
		return "", fmt.Errorf("content type and description are required")
	}

	prompt := gateway.ContentPrompt(contentType, brandDescription, audience)
	text, err := s.provider.RequestText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return gateway.DecodeContent(text), nil
}

// SaveAsset persists generated copy against a project.
func (s *StudioService) SaveAsset(ctx context.Context, assetType, title, content, projectID string) (*store.ContentAsset, error) {
	if !validAssetTypes[assetType] {
		return nil, fmt.Errorf("invalid asset type %q", assetType)
	}
	if title == "" || content == "" || projectID == "" {
		return nil, fmt.Errorf("title, content and project id are required")
	}

	asset := &store.ContentAsset{
		Type:      assetType,
		Title:     title,
		Content:   content,
		ProjectID: projectID,
	}
	if err := s.dbStore.SaveAsset(asset); err != nil {
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}
	return asset, nil
}

// AssetsByProject lists the saved assets for one project.
func (s *StudioService) AssetsByProject(projectID string) ([]store.ContentAsset, error) {
	return s.dbStore.AssetsByProject(projectID)
}
