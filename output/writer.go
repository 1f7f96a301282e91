package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/service"
	"gopkg.in/yaml.v3"
)

// FileSink writes one multi-document YAML file per game into a destination
// directory.
type FileSink struct {
	dir string
}

// NewFileSink creates a file-based document sink, creating the destination
// directory when missing.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

// OpenGame opens the output file for one game. The file is created eagerly,
// so callers must only open games that passed the size guard.
func (s *FileSink) OpenGame(game string) (service.DocumentWriter, error) {
	path := filepath.Join(s.dir, FileNameFor(game))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return &GameFile{path: path, f: f, enc: enc}, nil
}

// FileNameFor maps a game name to its output file name; whitespace runs
// become single underscores.
func FileNameFor(game string) string {
	return strings.Join(strings.Fields(game), "_") + ".yaml"
}

// GameFile streams documents for a single game as a multi-document YAML
// file, one YAML document per generated record.
type GameFile struct {
	path  string
	f     *os.File
	enc   *yaml.Encoder
	count int
}

// Write appends one document to the game's file.
func (w *GameFile) Write(doc *engine.Document) error {
	node, err := documentNode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", doc.Name, err)
	}
	if err := w.enc.Encode(node); err != nil {
		return fmt.Errorf("failed to write document %q: %w", doc.Name, err)
	}
	w.count++
	return nil
}

// Count returns the number of documents written so far.
func (w *GameFile) Count() int {
	return w.count
}

// Close flushes and closes the game's file.
func (w *GameFile) Close() error {
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// documentNode lays out one record. Explicit nodes keep the option entries
// in declaration order; plain map encoding would sort them.
func documentNode(doc *engine.Document) (*yaml.Node, error) {
	options := &yaml.Node{Kind: yaml.MappingNode}
	for _, ov := range doc.Options {
		value := &yaml.Node{}
		if err := value.Encode(ov.Value); err != nil {
			return nil, err
		}
		options.Content = append(options.Content, scalarNode(ov.Name), value)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		scalarNode("name"), scalarNode(doc.Name),
		scalarNode("description"), scalarNode(doc.Description),
		scalarNode("game"), scalarNode(doc.Game),
		scalarNode(doc.Game), options,
	)
	return root, nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}
