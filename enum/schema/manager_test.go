package schema

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func createTestSchemaDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

func writeSchemaFile(t *testing.T, dir, filename string, gs *GameSchema) {
	t.Helper()
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal schema: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	dir := createTestSchemaDir(t)
	if _, err := NewManager(dir); err != nil {
		t.Errorf("Expected manager for existing directory, got error: %v", err)
	}

	if _, err := NewManager(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestManagerLoad(t *testing.T) {
	dir := createTestSchemaDir(t)
	writeSchemaFile(t, dir, "hollow_knight.json", createValidSchema())

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	gs, err := m.Load("hollow_knight")
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}
	if gs.Game != "Test Game" {
		t.Errorf("Expected game 'Test Game', got %q", gs.Game)
	}

	// Second load should come from cache and return the same pointer.
	again, err := m.Load("hollow_knight")
	if err != nil {
		t.Fatalf("Failed to load cached schema: %v", err)
	}
	if again != gs {
		t.Error("Expected cached schema on second load")
	}
}

func TestManagerLoadNotFound(t *testing.T) {
	dir := createTestSchemaDir(t)
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if _, err := m.Load("nonexistent"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Expected ErrSchemaNotFound, got %v", err)
	}
}

func TestManagerLoadInvalidSchema(t *testing.T) {
	dir := createTestSchemaDir(t)
	gs := createValidSchema()
	gs.Options[0].Default = "bogus"
	writeSchemaFile(t, dir, "broken.json", gs)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if _, err := m.Load("broken"); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema, got %v", err)
	}
}

func TestManagerLoadByGame(t *testing.T) {
	dir := createTestSchemaDir(t)
	gs := createValidSchema()
	gs.Game = "Hollow Knight"
	writeSchemaFile(t, dir, "Hollow_Knight.json", gs)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// The declared name contains a space; the file name uses an underscore.
	loaded, err := m.LoadByGame("Hollow Knight")
	if err != nil {
		t.Fatalf("Failed to load schema by game name: %v", err)
	}
	if loaded.Game != "Hollow Knight" {
		t.Errorf("Expected game 'Hollow Knight', got %q", loaded.Game)
	}

	if _, err := m.LoadByGame("Unknown Game"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Expected ErrSchemaNotFound, got %v", err)
	}
}

func TestManagerList(t *testing.T) {
	dir := createTestSchemaDir(t)

	first := createValidSchema()
	first.Game = "First Game"
	writeSchemaFile(t, dir, "first.json", first)

	second := createValidSchema()
	second.Game = "Second Game"
	writeSchemaFile(t, dir, "second.json", second)

	// Non-JSON files and invalid schemas are skipped.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	infos, err := m.List()
	if err != nil {
		t.Fatalf("Failed to list schemas: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 schemas, got %d", len(infos))
	}
	for _, info := range infos {
		if info.OptionCount != 3 {
			t.Errorf("Expected 3 options for %q, got %d", info.Game, info.OptionCount)
		}
	}
}

func TestManagerRefreshCache(t *testing.T) {
	dir := createTestSchemaDir(t)
	writeSchemaFile(t, dir, "game.json", createValidSchema())

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	first, err := m.Load("game")
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}

	m.RefreshCache()

	second, err := m.Load("game")
	if err != nil {
		t.Fatalf("Failed to reload schema: %v", err)
	}
	if first == second {
		t.Error("Expected a fresh schema after RefreshCache")
	}
}

func TestManagerSave(t *testing.T) {
	dir := createTestSchemaDir(t)
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	gs := createValidSchema()
	gs.Game = "Saved Game"
	if err := m.Save("Saved Game", gs); err != nil {
		t.Fatalf("Failed to save schema: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Saved_Game.json")); err != nil {
		t.Errorf("Expected schema file on disk: %v", err)
	}

	loaded, err := m.Load("Saved Game")
	if err != nil {
		t.Fatalf("Failed to load saved schema: %v", err)
	}
	if loaded.Game != "Saved Game" {
		t.Errorf("Expected game 'Saved Game', got %q", loaded.Game)
	}

	bad := createValidSchema()
	bad.Options = nil
	if err := m.Save("Bad Game", bad); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema, got %v", err)
	}
}
