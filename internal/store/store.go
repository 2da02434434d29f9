package store

// ProjectStore is the persistence boundary for brand projects and content
// assets. The active project is a single record replaced wholesale on each
// save; the project list is append-only with no dedup and no cap.
type ProjectStore interface {
	// ActiveProject returns the current active project, or nil if none has
	// been saved yet.
	ActiveProject() (*BrandProject, error)
	// SetActiveProject replaces the active project wholesale.
	SetActiveProject(project *BrandProject) error

	Projects() ([]BrandProject, error)
	AppendProject(project BrandProject) error

	SaveAsset(asset *ContentAsset) error
	AssetsByProject(projectID string) ([]ContentAsset, error)

	Close() error
}
