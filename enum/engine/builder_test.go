package engine

import (
	"testing"

	"github.com/mlewan/hyperenum/enum/schema"
)

func builderJob() *GameJob {
	return &GameJob{
		Game: "Test Game",
		Options: []schema.OptionSchema{
			*choiceOption(),
			*rangeOption(),
			*toggleOption(),
		},
		Specs: map[string]OptionSpec{
			"goal": AllSpec(),
		},
		Behavior:      FallbackDefault,
		Fixed:         map[string]any{"progression_balancing": 0, "accessibility": "items"},
		DefaultSplits: 1,
	}
}

func TestBuildDocumentCoversDeclaredOptions(t *testing.T) {
	job := builderJob()
	doc := BuildDocument(job, 3, Combination{"goal": "godhome"})

	if doc.Game != "Test Game" {
		t.Errorf("Expected game name, got %q", doc.Game)
	}
	if doc.Name != "Test Game3" || doc.Description != "Test Game3" {
		t.Errorf("Expected indexed record name, got %q / %q", doc.Name, doc.Description)
	}

	// Declared options plus fixed metadata, no more, no fewer.
	if len(doc.Options) != 5 {
		t.Fatalf("Expected 5 entries, got %d: %v", len(doc.Options), doc.Options)
	}

	if v, ok := doc.Value("goal"); !ok || v != "godhome" {
		t.Errorf("Expected enumerated value for goal, got %v", v)
	}
	if v, ok := doc.Value("grub_count"); !ok || v != 5 {
		t.Errorf("Expected default fallback for grub_count, got %v", v)
	}
	if v, ok := doc.Value("death_link"); !ok || v != false {
		t.Errorf("Expected default fallback for death_link, got %v", v)
	}
}

func TestBuildDocumentOrder(t *testing.T) {
	job := builderJob()
	doc := BuildDocument(job, 1, Combination{"goal": "any"})

	// Declared options in declaration order, fixed entries after, sorted.
	expected := []string{"goal", "grub_count", "death_link", "accessibility", "progression_balancing"}
	if len(doc.Options) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(doc.Options))
	}
	for i, name := range expected {
		if doc.Options[i].Name != name {
			t.Errorf("Entry %d: expected %q, got %q", i, name, doc.Options[i].Name)
		}
	}
}

func TestBuildDocumentFixedCollision(t *testing.T) {
	job := builderJob()
	job.Fixed["grub_count"] = 99

	doc := BuildDocument(job, 1, Combination{"goal": "any"})

	seen := 0
	for _, ov := range doc.Options {
		if ov.Name == "grub_count" {
			seen++
			if ov.Value != 5 {
				t.Errorf("Expected declared option value 5, got %v", ov.Value)
			}
		}
	}
	if seen != 1 {
		t.Errorf("Expected exactly one grub_count entry, got %d", seen)
	}
}

func TestBuildDocumentFallbackBehavior(t *testing.T) {
	job := builderJob()
	job.Behavior = FallbackMaximum

	doc := BuildDocument(job, 1, Combination{"goal": "any"})
	if v, _ := doc.Value("grub_count"); v != 10 {
		t.Errorf("Expected maximum fallback 10, got %v", v)
	}
	if v, _ := doc.Value("death_link"); v != true {
		t.Errorf("Expected maximum fallback true, got %v", v)
	}
}
