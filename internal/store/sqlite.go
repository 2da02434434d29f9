package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

var _ ProjectStore = (*SQLiteStore)(nil)

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS active_project (
        slot INTEGER PRIMARY KEY CHECK (slot = 1), -- single row
        id TEXT NOT NULL,
        name TEXT NOT NULL,
        description TEXT NOT NULL,
        logo_url TEXT,
        keywords_json TEXT NOT NULL,
        tone TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS projects (
        rowid_order INTEGER PRIMARY KEY AUTOINCREMENT, -- preserves append order
        id TEXT NOT NULL,
        name TEXT NOT NULL,
        description TEXT NOT NULL,
        logo_url TEXT,
        keywords_json TEXT NOT NULL,
        tone TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS content_assets (
        id TEXT PRIMARY KEY, -- UUID
        type TEXT NOT NULL CHECK (type IN ('ad', 'website', 'social')),
        title TEXT NOT NULL,
        content TEXT NOT NULL,
        project_id TEXT NOT NULL
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// Active project methods

func (s *SQLiteStore) ActiveProject() (*BrandProject, error) {
	row := s.db.QueryRow("SELECT id, name, description, logo_url, keywords_json, tone, created_at FROM active_project WHERE slot = 1")
	project, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No active project yet
		}
		return nil, fmt.Errorf("failed to query active project: %w", err)
	}
	return project, nil
}

func (s *SQLiteStore) SetActiveProject(project *BrandProject) error {
	keywordsJSON, err := json.Marshal(project.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	stmt, err := s.db.Prepare("INSERT OR REPLACE INTO active_project (slot, id, name, description, logo_url, keywords_json, tone, created_at) VALUES (1, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare active project upsert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(project.ID, project.Name, project.Description, nullable(project.LogoURL), string(keywordsJSON), project.Tone, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute active project upsert: %w", err)
	}
	return nil
}

// Saved project methods

func (s *SQLiteStore) Projects() ([]BrandProject, error) {
	rows, err := s.db.Query("SELECT id, name, description, logo_url, keywords_json, tone, created_at FROM projects ORDER BY rowid_order ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []BrandProject
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *project)
	}
	return projects, nil
}

func (s *SQLiteStore) AppendProject(project BrandProject) error {
	keywordsJSON, err := json.Marshal(project.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	stmt, err := s.db.Prepare("INSERT INTO projects (id, name, description, logo_url, keywords_json, tone, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare project insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(project.ID, project.Name, project.Description, nullable(project.LogoURL), string(keywordsJSON), project.Tone, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute project insert: %w", err)
	}
	return nil
}

// Content asset methods

func (s *SQLiteStore) SaveAsset(asset *ContentAsset) error {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}

	stmt, err := s.db.Prepare("INSERT INTO content_assets (id, type, title, content, project_id) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare asset insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(asset.ID, asset.Type, asset.Title, asset.Content, asset.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to execute asset insert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AssetsByProject(projectID string) ([]ContentAsset, error) {
	rows, err := s.db.Query("SELECT id, type, title, content, project_id FROM content_assets WHERE project_id = ?", projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []ContentAsset
	for rows.Next() {
		var asset ContentAsset
		if err := rows.Scan(&asset.ID, &asset.Type, &asset.Title, &asset.Content, &asset.ProjectID); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*BrandProject, error) {
	var project BrandProject
	var logoURL sql.NullString
	var keywordsJSON string
	if err := row.Scan(&project.ID, &project.Name, &project.Description, &logoURL, &keywordsJSON, &project.Tone, &project.CreatedAt); err != nil {
		return nil, err
	}
	if logoURL.Valid {
		project.LogoURL = logoURL.String
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &project.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords for project %s: %w", project.ID, err)
	}
	return &project, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
