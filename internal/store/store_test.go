package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// runStoreTests exercises the ProjectStore contract shared by both
// implementations.
func runStoreTests(t *testing.T, newStore func(t *testing.T) ProjectStore) {
	t.Run("active project starts absent", func(t *testing.T) {
		s := newStore(t)
		project, err := s.ActiveProject()
		require.NoError(t, err)
		require.Nil(t, project)
	})

	t.Run("active project is replaced wholesale", func(t *testing.T) {
		s := newStore(t)

		first := &BrandProject{
			ID:          "p1",
			Name:        "Acme",
			Description: "d",
			Keywords:    []string{"eco", "fast"},
			Tone:        "Modern",
			CreatedAt:   "2026-01-02T03:04:05Z",
		}
		require.NoError(t, s.SetActiveProject(first))

		got, err := s.ActiveProject()
		require.NoError(t, err)
		require.Equal(t, first, got)

		second := &BrandProject{
			ID:        "p2",
			Name:      "Zenith",
			Keywords:  []string{"luxury"},
			Tone:      "Luxury",
			LogoURL:   "data:image/png;base64,aGVsbG8=",
			CreatedAt: "2026-02-02T03:04:05Z",
		}
		require.NoError(t, s.SetActiveProject(second))

		got, err = s.ActiveProject()
		require.NoError(t, err)
		require.Equal(t, second, got)
	})

	t.Run("project list is append-only with no dedup", func(t *testing.T) {
		s := newStore(t)

		project := BrandProject{
			ID:        "p1",
			Name:      "Acme",
			Keywords:  []string{"eco", "fast"},
			Tone:      "Modern",
			CreatedAt: "2026-01-02T03:04:05Z",
		}
		require.NoError(t, s.AppendProject(project))
		require.NoError(t, s.AppendProject(project)) // identical entry is kept

		projects, err := s.Projects()
		require.NoError(t, err)
		require.Len(t, projects, 2)
		require.Equal(t, project, projects[0])
		require.Equal(t, project, projects[1])
	})

	t.Run("empty keywords survive persistence", func(t *testing.T) {
		s := newStore(t)

		project := BrandProject{
			ID:        "p1",
			Name:      "Acme",
			Keywords:  []string{"eco", "fast", ""}, // trailing comma in the form
			Tone:      "Modern",
			CreatedAt: "2026-01-02T03:04:05Z",
		}
		require.NoError(t, s.AppendProject(project))

		projects, err := s.Projects()
		require.NoError(t, err)
		require.Len(t, projects, 1)
		require.Equal(t, []string{"eco", "fast", ""}, projects[0].Keywords)
	})

	t.Run("assets are scoped to their project", func(t *testing.T) {
		s := newStore(t)

		ad := &ContentAsset{Type: "ad", Title: "Launch ad", Content: "Buy now!", ProjectID: "p1"}
		require.NoError(t, s.SaveAsset(ad))
		require.NotEmpty(t, ad.ID)

		social := &ContentAsset{Type: "social", Title: "Post", Content: "Hello", ProjectID: "p2"}
		require.NoError(t, s.SaveAsset(social))

		assets, err := s.AssetsByProject("p1")
		require.NoError(t, err)
		require.Len(t, assets, 1)
		require.Equal(t, *ad, assets[0])

		assets, err = s.AssetsByProject("missing")
		require.NoError(t, err)
		require.Empty(t, assets)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) ProjectStore {
		return NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) ProjectStore {
		s, err := NewSQLiteStore(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLiteStoreRejectsInvalidAssetType(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	err = s.SaveAsset(&ContentAsset{Type: "billboard", Title: "t", Content: "c", ProjectID: "p"})
	require.Error(t, err)
}
