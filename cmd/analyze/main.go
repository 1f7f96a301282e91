// Command analyze prints quick, human-readable heuristics about the game
// schemas in a schemas directory. It summarizes option counts by kind,
// flags very wide ranges and single-value domains, and reports the
// worst-case document count of enumerating every option with "all".
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
)

// schemaStats summarizes one game schema: option counts by kind, the
// worst-case document count with every option spec'd "all", and any
// noteworthy findings.
type schemaStats struct {
	Choices   int
	Ranges    int
	Toggles   int
	WorstCase int
	Notes     []string
}

// collectStats resolves every option of the schema with an "all" spec and
// accumulates the per-kind counts and heuristics.
func collectStats(gs *schema.GameSchema, splits int) schemaStats {
	var stats schemaStats
	sizes := make([]int, 0, len(gs.Options))

	for i := range gs.Options {
		opt := &gs.Options[i]

		values, err := engine.Resolve(opt, engine.AllSpec(), splits)
		if err != nil {
			stats.Notes = append(stats.Notes, fmt.Sprintf("%s: cannot resolve: %v", opt.Name, err))
			continue
		}
		sizes = append(sizes, len(values))

		switch opt.Kind {
		case schema.Choice:
			stats.Choices++
		case schema.Range:
			stats.Ranges++
			if opt.Cardinality() > 10000 {
				stats.Notes = append(stats.Notes, fmt.Sprintf(
					"range %q spans %d values; splits keep it at %d samples",
					opt.Name, opt.Cardinality(), len(values)))
			}
		case schema.Toggle:
			stats.Toggles++
		}

		if len(values) == 1 {
			stats.Notes = append(stats.Notes, fmt.Sprintf(
				"option %q has a single-value domain, enumerating it adds nothing", opt.Name))
		}
	}

	stats.WorstCase = engine.Product(sizes)
	return stats
}

func main() {
	schemasDir := flag.String("schemas", "schemas", "directory containing game option schemas")
	splits := flag.Int("splits", 2, "default splits assumed for range options")
	flag.Parse()

	mgr, err := schema.NewManager(*schemasDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	infos, err := mgr.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(infos) == 0 {
		fmt.Println("No game schemas found.")
		return
	}

	for _, info := range infos {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		analyzeSchema(mgr, info.SchemaID, *splits)
	}
}

func analyzeSchema(mgr *schema.Manager, schemaID string, splits int) {
	gs, err := mgr.Load(schemaID)
	if err != nil {
		fmt.Printf("Error loading schema: %v\n", err)
		return
	}

	fmt.Printf("Game: %s\n", gs.Game)
	if gs.Description != "" {
		fmt.Printf("Description: %s\n", gs.Description)
	}

	stats := collectStats(gs, splits)
	for _, note := range stats.Notes {
		fmt.Printf("  NOTE: %s\n", note)
	}

	fmt.Printf("Options: %d (%d choices, %d ranges, %d toggles)\n",
		len(gs.Options), stats.Choices, stats.Ranges, stats.Toggles)

	fmt.Printf("Worst case (every option \"all\", splits=%d): %d documents\n", splits, stats.WorstCase)
	if engine.CheckSize(stats.WorstCase, engine.DefaultThreshold) == engine.ConfirmRequired {
		fmt.Printf("  exceeds the default threshold of %d\n", engine.DefaultThreshold)
	}
}
