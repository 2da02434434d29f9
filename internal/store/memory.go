package store

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process ProjectStore used by tests and the -memory
// server flag. Semantics mirror SQLiteStore: wholesale active-project
// replacement, append-only project list.
type MemoryStore struct {
	mu       sync.Mutex
	active   *BrandProject
	projects []BrandProject
	assets   []ContentAsset
}

var _ ProjectStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ActiveProject() (*BrandProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, nil
	}
	p := *s.active
	return &p, nil
}

func (s *MemoryStore) SetActiveProject(project *BrandProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *project
	s.active = &p
	return nil
}

func (s *MemoryStore) Projects() ([]BrandProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]BrandProject, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

func (s *MemoryStore) AppendProject(project BrandProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, project)
	return nil
}

func (s *MemoryStore) SaveAsset(asset *ContentAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	s.assets = append(s.assets, *asset)
	return nil
}

func (s *MemoryStore) AssetsByProject(projectID string) ([]ContentAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ContentAsset
	for _, a := range s.assets {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
