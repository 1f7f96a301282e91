// Command validate checks hyperenum run configurations against the game
// schemas without generating anything. It reports, per game:
//   - Games with no schema in the schemas directory
//   - Specs naming options the game does not declare
//   - Spec values outside the declared domain (bad choices, negative splits)
//   - Unknown fallback behavior tokens
//   - The estimated document count and whether it trips the size threshold
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mlewan/hyperenum/enum/check"
	"github.com/mlewan/hyperenum/enum/config"
	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
)

// validateFile parses one run-configuration file and checks every game it
// declares against the schemas.
func validateFile(mgr *schema.Manager, path string, splits, threshold int) ([]check.Result, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	results := make([]check.Result, 0, len(cfg.Games))
	for _, req := range cfg.Games {
		results = append(results, check.ValidateGame(mgr, req, splits, threshold))
	}
	return results, nil
}

func main() {
	schemasDir := flag.String("schemas", "schemas", "directory containing game option schemas")
	splits := flag.Int("splits", 2, "default splits for range options spec'd \"all\"")
	threshold := flag.Int("threshold", engine.DefaultThreshold, "size-guard threshold")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: validate [flags] <run-config.yaml>...")
		os.Exit(2)
	}

	mgr, err := schema.NewManager(*schemasDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range flag.Args() {
		fmt.Printf("=== %s ===\n", path)

		results, err := validateFile(mgr, path, *splits, *threshold)
		if err != nil {
			fmt.Printf("  ✗ %v\n", err)
			failed++
			continue
		}

		for _, result := range results {
			if result.Valid {
				fmt.Printf("  %s: OK\n", result.Game)
			} else {
				fmt.Printf("  %s: INVALID\n", result.Game)
				failed++
			}
			for _, note := range result.Notes {
				fmt.Printf("    %s\n", note)
			}
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
