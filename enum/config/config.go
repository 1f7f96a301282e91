package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mlewan/hyperenum/enum/engine"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid run configuration")

// GameRequest is one game's enumeration request from the run configuration.
type GameRequest struct {
	Game    string
	Options map[string]engine.OptionSpec
	Others  engine.FallbackBehavior
	Fixed   map[string]any
}

// RunConfig is a parsed run configuration: one request per game, in
// document order.
type RunConfig struct {
	Games []GameRequest
}

// Find returns the request for the named game, or nil when absent.
func (c *RunConfig) Find(game string) *GameRequest {
	for i := range c.Games {
		if c.Games[i].Game == game {
			return &c.Games[i]
		}
	}
	return nil
}

// gameDoc mirrors one YAML document of the run configuration.
type gameDoc struct {
	Game    string              `yaml:"game"`
	Options map[string]specNode `yaml:"options"`
	Others  string              `yaml:"others"`
	Fixed   map[string]any      `yaml:"fixed"`
}

// specNode decodes the three spec shapes: the scalar "all", an explicit
// value sequence, an integer splits count, or a bare scalar treated as a
// single explicit value.
type specNode struct {
	spec engine.OptionSpec
}

func (s *specNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var values []any
		if err := node.Decode(&values); err != nil {
			return err
		}
		s.spec = engine.ExplicitSpec(values...)
		return nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		switch value := v.(type) {
		case string:
			if strings.EqualFold(value, "all") {
				s.spec = engine.AllSpec()
				return nil
			}
			s.spec = engine.ExplicitSpec(value)
			return nil
		case int:
			s.spec = engine.SplitsSpec(value)
			return nil
		case bool:
			s.spec = engine.ExplicitSpec(value)
			return nil
		}
		return fmt.Errorf("unsupported option spec value %v", v)
	}
	return fmt.Errorf("option spec must be a scalar or a sequence")
}

// Load reads a multi-document YAML run configuration from a file.
func Load(path string) (*RunConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a multi-document YAML run configuration. Each document
// declares one game. Parsing is strict: an undeclared game name, an
// unknown fallback token, or a duplicate game fails the whole file.
func Parse(r io.Reader) (*RunConfig, error) {
	dec := yaml.NewDecoder(r)

	cfg := &RunConfig{}
	seen := make(map[string]bool)
	for docIndex := 1; ; docIndex++ {
		var doc gameDoc
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrInvalidConfig, docIndex, err)
		}

		if doc.Game == "" {
			return nil, fmt.Errorf("%w: document %d declares no game", ErrInvalidConfig, docIndex)
		}
		if seen[doc.Game] {
			return nil, fmt.Errorf("%w: game %q configured twice", ErrInvalidConfig, doc.Game)
		}
		seen[doc.Game] = true

		behavior, err := engine.ParseFallbackBehavior(doc.Others)
		if err != nil {
			return nil, fmt.Errorf("%w: game %q: %v", ErrInvalidConfig, doc.Game, err)
		}

		specs := make(map[string]engine.OptionSpec, len(doc.Options))
		for name, node := range doc.Options {
			specs[name] = node.spec
		}

		cfg.Games = append(cfg.Games, GameRequest{
			Game:    doc.Game,
			Options: specs,
			Others:  behavior,
			Fixed:   doc.Fixed,
		})
	}

	if len(cfg.Games) == 0 {
		return nil, fmt.Errorf("%w: no game documents found", ErrInvalidConfig)
	}

	return cfg, nil
}
