package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/mlewan/hyperenum/enum/engine"
)

const sampleConfig = `game: Hollow Knight
options:
  goal: all
  grub_count: 2
  accessibility: [minimal, full]
  death_link: true
  start_location: kings_pass
others: random
fixed:
  progression_balancing: 50
---
game: Stardew Valley
options:
  goal: all
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}
	if len(cfg.Games) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(cfg.Games))
	}

	hk := cfg.Games[0]
	if hk.Game != "Hollow Knight" {
		t.Errorf("Expected game 'Hollow Knight', got %q", hk.Game)
	}
	if hk.Others != engine.FallbackRandom {
		t.Errorf("Expected random fallback, got %q", hk.Others)
	}
	if hk.Fixed["progression_balancing"] != 50 {
		t.Errorf("Expected fixed progression_balancing 50, got %v", hk.Fixed["progression_balancing"])
	}

	cases := []struct {
		option string
		kind   engine.SpecKind
		values []any
		splits int
	}{
		{"goal", engine.SpecAll, nil, 0},
		{"grub_count", engine.SpecSplits, nil, 2},
		{"accessibility", engine.SpecExplicit, []any{"minimal", "full"}, 0},
		{"death_link", engine.SpecExplicit, []any{true}, 0},
		{"start_location", engine.SpecExplicit, []any{"kings_pass"}, 0},
	}
	for _, tc := range cases {
		spec, ok := hk.Options[tc.option]
		if !ok {
			t.Errorf("Missing spec for option %q", tc.option)
			continue
		}
		if spec.Kind != tc.kind {
			t.Errorf("Option %q: expected kind %v, got %v", tc.option, tc.kind, spec.Kind)
			continue
		}
		if spec.Splits != tc.splits {
			t.Errorf("Option %q: expected %d splits, got %d", tc.option, tc.splits, spec.Splits)
		}
		if len(spec.Values) != len(tc.values) {
			t.Errorf("Option %q: expected values %v, got %v", tc.option, tc.values, spec.Values)
			continue
		}
		for i, v := range tc.values {
			if spec.Values[i] != v {
				t.Errorf("Option %q: expected value %v at %d, got %v", tc.option, v, i, spec.Values[i])
			}
		}
	}
}

func TestParseDefaultsOthersToDefault(t *testing.T) {
	cfg, err := Parse(strings.NewReader("game: Hollow Knight\n"))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}
	if cfg.Games[0].Others != engine.FallbackDefault {
		t.Errorf("Expected default fallback, got %q", cfg.Games[0].Others)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty config", ""},
		{"missing game name", "options:\n  goal: all\n"},
		{"duplicate game", "game: A\n---\ngame: A\n"},
		{"unknown others token", "game: A\nothers: chaos\n"},
		{"mapping spec", "game: A\noptions:\n  goal: {oops: 1}\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRunConfigFind(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if req := cfg.Find("Stardew Valley"); req == nil || req.Game != "Stardew Valley" {
		t.Errorf("Expected request for 'Stardew Valley', got %+v", req)
	}
	if req := cfg.Find("Unknown"); req != nil {
		t.Errorf("Expected nil for unknown game, got %+v", req)
	}
}
