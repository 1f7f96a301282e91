package service

import (
	"context"

	"github.com/mlewan/hyperenum/enum/config"
	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
)

// GeneratorService defines all generation-related operations
type GeneratorService interface {
	// Schema discovery
	ListGames(ctx context.Context) ([]*GameInfo, error)
	DescribeGame(ctx context.Context, game string) (*schema.GameSchema, error)

	// Generation
	Estimate(ctx context.Context, req config.GameRequest, opts GenerateOptions) (*Estimate, error)
	Generate(ctx context.Context, req config.GameRequest, opts GenerateOptions) (*GameReport, error)
	GenerateAll(ctx context.Context, cfg *config.RunConfig, opts GenerateOptions) ([]*GameReport, error)
}

// SchemaManager supplies declared game schemas
type SchemaManager interface {
	Load(name string) (*schema.GameSchema, error)
	LoadByGame(game string) (*schema.GameSchema, error)
	List() ([]*schema.SchemaInfo, error)
}

// Sink receives the generated document stream, one writer per game
type Sink interface {
	OpenGame(game string) (DocumentWriter, error)
}

// DocumentWriter persists the ordered documents of a single game
type DocumentWriter interface {
	Write(doc *engine.Document) error
	Close() error
}

// ConfirmFunc decides whether generation may proceed past the size
// threshold. Returning false skips the game.
type ConfirmFunc func(game string, total, threshold int) bool

// GenerateOptions carries the per-run knobs shared by all games.
type GenerateOptions struct {
	Sink          Sink
	Confirm       ConfirmFunc // nil declines every over-threshold game
	DefaultSplits int         // splits for range options spec'd "all"
	Threshold     int         // size-guard threshold; <=0 selects the default
	Ignore        []string    // option names excluded from jobs entirely
}
