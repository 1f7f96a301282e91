package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
)

func testManager(t *testing.T) *schema.Manager {
	t.Helper()
	dir := t.TempDir()

	gs := &schema.GameSchema{
		Game: "Hollow Knight",
		Options: []schema.OptionSchema{
			{Name: "goal", Kind: schema.Choice, Choices: []string{"any", "godhome"}, Default: "any"},
			{Name: "grub_count", Kind: schema.Range, Min: 0, Max: 46, Default: 23},
		},
	}
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal schema: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Hollow_Knight.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	mgr, err := schema.NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return mgr
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestValidateFile(t *testing.T) {
	mgr := testManager(t)
	path := writeConfig(t, `game: Hollow Knight
options:
  goal: all
  grub_count: 2
---
game: Missing Game
options:
  goal: all
`)

	results, err := validateFile(mgr, path, 2, engine.DefaultThreshold)
	if err != nil {
		t.Fatalf("Failed to validate file: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if !results[0].Valid {
		t.Errorf("Expected valid result for Hollow Knight, got notes: %v", results[0].Notes)
	}
	if results[1].Valid {
		t.Error("Expected invalid result for a game with no schema")
	}
}

func TestValidateFileBadConfig(t *testing.T) {
	mgr := testManager(t)
	path := writeConfig(t, "options:\n  goal: all\n")

	if _, err := validateFile(mgr, path, 2, engine.DefaultThreshold); err == nil {
		t.Error("Expected error for a config document with no game")
	}
}

func TestValidateFileMissing(t *testing.T) {
	mgr := testManager(t)

	if _, err := validateFile(mgr, filepath.Join(t.TempDir(), "nope.yaml"), 2, engine.DefaultThreshold); err == nil {
		t.Error("Expected error for a missing config file")
	}
}
