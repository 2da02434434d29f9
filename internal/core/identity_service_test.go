package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandcraft.io/brandcraft/internal/store"
)

func TestGenerateNames(t *testing.T) {
	provider := &stubProvider{textResponse: "Verdant, Ecova, Swiftly"}
	svc := NewIdentityService(provider, store.NewMemoryStore())

	names, err := svc.GenerateNames(context.Background(), "eco, fast", "Modern")
	require.NoError(t, err)
	assert.Equal(t, []string{"Verdant", "Ecova", "Swiftly"}, names)
	assert.Contains(t, provider.lastPrompt, "eco, fast")
	assert.Contains(t, provider.lastPrompt, "Modern")
}

func TestGenerateNamesRequiresKeywords(t *testing.T) {
	svc := NewIdentityService(&stubProvider{}, store.NewMemoryStore())

	_, err := svc.GenerateNames(context.Background(), "", "Modern")
	require.Error(t, err)
}

func TestGenerateNamesEmptyProviderText(t *testing.T) {
	provider := &stubProvider{textResponse: ""}
	svc := NewIdentityService(provider, store.NewMemoryStore())

	names, err := svc.GenerateNames(context.Background(), "eco", "Modern")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGenerateLogoAbsentImage(t *testing.T) {
	provider := &stubProvider{imageOK: false}
	svc := NewIdentityService(provider, store.NewMemoryStore())

	uri, ok, err := svc.GenerateLogo(context.Background(), "Acme", "eco courier")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, uri)
}

func TestGenerateLogo(t *testing.T) {
	provider := &stubProvider{imageURI: "data:image/png;base64,aGVsbG8=", imageOK: true}
	svc := NewIdentityService(provider, store.NewMemoryStore())

	uri, ok, err := svc.GenerateLogo(context.Background(), "Acme", "eco courier")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", uri)
}

func TestSaveProject(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewIdentityService(&stubProvider{}, memStore)

	project, err := svc.SaveProject(context.Background(), "Acme", "d", "eco, fast", "Modern", "")
	require.NoError(t, err)

	assert.Equal(t, "Acme", project.Name)
	assert.Equal(t, "d", project.Description)
	assert.Equal(t, []string{"eco", "fast"}, project.Keywords)
	assert.Equal(t, "Modern", project.Tone)
	assert.NotEmpty(t, project.ID)

	createdAt, err := time.Parse(time.RFC3339, project.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), createdAt, time.Minute)

	// The save replaces the active project and grows the list by one.
	active, err := memStore.ActiveProject()
	require.NoError(t, err)
	require.Equal(t, project, active)

	projects, err := memStore.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, *project, projects[0])
}

func TestSaveProjectRequiresName(t *testing.T) {
	svc := NewIdentityService(&stubProvider{}, store.NewMemoryStore())

	_, err := svc.SaveProject(context.Background(), "", "d", "eco", "Modern", "")
	require.Error(t, err)
}

func TestSaveProjectKeepsEmptyKeywordSegments(t *testing.T) {
	svc := NewIdentityService(&stubProvider{}, store.NewMemoryStore())

	project, err := svc.SaveProject(context.Background(), "Acme", "d", "eco, fast,", "Modern", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"eco", "fast", ""}, project.Keywords)
}
