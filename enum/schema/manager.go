package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrSchemaNotFound = errors.New("schema not found")
	ErrInvalidSchema  = errors.New("invalid schema")
)

// Manager handles game schema loading and caching
type Manager struct {
	schemaDir string
	schemas   map[string]*GameSchema
	mu        sync.RWMutex
}

// NewManager creates a new schema manager
func NewManager(schemaDir string) (*Manager, error) {
	// Ensure schema directory exists
	if _, err := os.Stat(schemaDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema directory does not exist: %s", schemaDir)
	}

	return &Manager{
		schemaDir: schemaDir,
		schemas:   make(map[string]*GameSchema),
	}, nil
}

// Load loads a game schema by name
func (m *Manager) Load(name string) (*GameSchema, error) {
	m.mu.RLock()
	// Check cache first
	if gs, exists := m.schemas[name]; exists {
		m.mu.RUnlock()
		return gs, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if gs, exists := m.schemas[name]; exists {
		return gs, nil
	}

	schemaPath := filepath.Join(m.schemaDir, fileNameFor(name))

	// Read schema file
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSchemaNotFound
		}
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	// Parse schema
	var gs GameSchema
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	// Validate schema
	if err := ValidateGameSchema(&gs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	// Cache the schema
	m.schemas[name] = &gs
	return &gs, nil
}

// LoadByGame loads a schema by its declared game name rather than its file
// name. Spaces in game names map to underscores in file names.
func (m *Manager) LoadByGame(game string) (*GameSchema, error) {
	gs, err := m.Load(game)
	if err == nil && gs.Game == game {
		return gs, nil
	}

	infos, listErr := m.List()
	if listErr != nil {
		return nil, listErr
	}
	for _, info := range infos {
		if info.Game == game {
			return m.Load(info.SchemaID)
		}
	}
	return nil, ErrSchemaNotFound
}

// List returns information about all available game schemas
func (m *Manager) List() ([]*SchemaInfo, error) {
	entries, err := os.ReadDir(m.schemaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var infos []*SchemaInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		// Remove .json extension for schema name
		name := strings.TrimSuffix(entry.Name(), ".json")

		// Try to load the schema to get details
		gs, err := m.Load(name)
		if err != nil {
			// Skip invalid schemas
			continue
		}

		infos = append(infos, &SchemaInfo{
			Filename:    entry.Name(),
			SchemaID:    name, // This is the identifier to use when loading
			Game:        gs.Game,
			Description: gs.Description,
			OptionCount: len(gs.Options),
		})
	}

	return infos, nil
}

// RefreshCache clears all cached schemas so the next load re-reads disk
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemas = make(map[string]*GameSchema)
}

// Save writes a game schema to disk
func (m *Manager) Save(name string, gs *GameSchema) error {
	// Validate schema before saving
	if err := ValidateGameSchema(gs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	schemaPath := filepath.Join(m.schemaDir, fileNameFor(name))

	// Marshal schema to JSON with indentation
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	// Write to file
	if err := os.WriteFile(schemaPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	// Update cache
	m.mu.Lock()
	m.schemas[name] = gs
	m.mu.Unlock()

	return nil
}

// fileNameFor maps a schema name to its on-disk file name. Spaces become
// underscores and the .json extension is appended when missing.
func fileNameFor(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
