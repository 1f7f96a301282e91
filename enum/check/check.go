// Package check dry-runs run configurations against game schemas.
//
// A check resolves every spec of a game request against the game's
// declared schema and computes the resulting document count, without
// materializing any combination or touching the output directory. It
// backs both the "check" CLI command and the standalone validate tool.
package check

import (
	"fmt"

	"github.com/mlewan/hyperenum/enum/config"
	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
)

// SchemaLoader supplies declared game schemas by game name.
type SchemaLoader interface {
	LoadByGame(game string) (*schema.GameSchema, error)
}

// Result captures the outcome of checking a single game. If Valid is
// true, Notes contains informational messages; otherwise it accumulates
// the validation errors that were found.
type Result struct {
	Game  string
	Valid bool
	Notes []string
}

// ValidateGame checks one game request against its schema and dry-runs
// the resolution pass.
func ValidateGame(loader SchemaLoader, req config.GameRequest, splits, threshold int) Result {
	result := Result{
		Game:  req.Game,
		Valid: true,
		Notes: []string{},
	}

	gs, err := loader.LoadByGame(req.Game)
	if err != nil {
		result.Valid = false
		result.Notes = append(result.Notes, fmt.Sprintf("No schema: %v", err))
		return result
	}

	job := &engine.GameJob{
		Game:          gs.Game,
		Options:       gs.Options,
		Specs:         req.Options,
		Behavior:      req.Others,
		Fixed:         req.Fixed,
		DefaultSplits: splits,
	}

	names, sets, err := job.Resolve()
	if err != nil {
		result.Valid = false
		result.Notes = append(result.Notes, err.Error())
		return result
	}

	sizes := make([]int, len(sets))
	for i, set := range sets {
		sizes[i] = len(set)
	}
	total := engine.Product(sizes)

	result.Notes = append(result.Notes, fmt.Sprintf("✓ Options declared: %d", len(gs.Options)))
	result.Notes = append(result.Notes, fmt.Sprintf("✓ Options enumerated: %d", len(names)))
	result.Notes = append(result.Notes, fmt.Sprintf("✓ Documents: %d", total))
	if engine.CheckSize(total, threshold) == engine.ConfirmRequired {
		result.Notes = append(result.Notes,
			fmt.Sprintf("! Exceeds size threshold of %d, generation will ask for confirmation", threshold))
	}

	return result
}
