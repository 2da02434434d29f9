package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

// IdentityService backs the Identity Creator flow: brand name generation,
// logo generation and project save.
type IdentityService struct {
	provider gateway.Provider
	dbStore  store.ProjectStore
}

func NewIdentityService(provider gateway.Provider, dbStore store.ProjectStore) *IdentityService {
	return &IdentityService{
		provider: provider,
		dbStore:  dbStore,
	}
}

// GenerateNames asks the provider for brand names matching the keywords and
// tone. The provider is asked for exactly 10 names but the decoded list may
// be shorter or longer; callers display whatever came back.
func (s *IdentityService) GenerateNames(ctx context.Context, rawKeywords, tone string) ([]string, error) {
	if rawKeywords == "" {
		return nil, fmt.Errorf("keywords are required")
	}

	prompt := gateway.NamesPrompt(store.SplitKeywords(rawKeywords), tone)
	text, err := s.provider.RequestText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate brand names: %w", err)
	}
	return gateway.DecodeNameList(text), nil
}

// GenerateLogo asks the provider for a square logo image. ok is false when
// the provider answered without an image part; that is not an error.
func (s *IdentityService) GenerateLogo(ctx context.Context, brandName, description string) (string, bool, error) {
	if brandName == "" {
		return "", false, fmt.Errorf("brand name is required")
	}

	prompt := gateway.LogoPrompt(brandName, description)
	uri, ok, err := s.provider.RequestImage(ctx, prompt, "1:1")
	if err != nil {
		return "", false, fmt.Errorf("failed to generate logo: %w", err)
	}
	return uri, ok, nil
}

// SaveProject builds a BrandProject from the identity form fields, replaces
// the active project wholesale and appends to the saved list.
func (s *IdentityService) SaveProject(ctx context.Context, name, description, rawKeywords, tone, logoURL string) (*store.BrandProject, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	project := &store.BrandProject{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		LogoURL:     logoURL,
		Keywords:    store.SplitKeywords(rawKeywords),
		Tone:        tone,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.dbStore.SetActiveProject(project); err != nil {
		return nil, fmt.Errorf("failed to save active project: %w", err)
	}
	if err := s.dbStore.AppendProject(*project); err != nil {
		return nil, fmt.Errorf("failed to append saved project: %w", err)
	}
	return project, nil
}

// ActiveProject returns the current active project, or nil when none exists.
func (s *IdentityService) ActiveProject() (*store.BrandProject, error) {
	return s.dbStore.ActiveProject()
}

// Projects returns every saved project in append order.
func (s *IdentityService) Projects() ([]store.BrandProject, error) {
	return s.dbStore.Projects()
}
