// Command hyperenum enumerates combinations of game options and writes one
// structured YAML document per combination, one output file per game.
//
// It supports four commands:
//  1. "generate" (default) – process a run configuration and write output files
//  2. "inspect" – print the option inventory of every available game schema
//  3. "check" – validate a run configuration against the schemas, no output
//  4. "mcp" – serve the generator over MCP stdio for AI agent integration
//
// Flags control the run configuration path, schema and output directories,
// the default split count for ranges, and the size-guard threshold.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mlewan/hyperenum/enum/check"
	"github.com/mlewan/hyperenum/enum/config"
	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
	"github.com/mlewan/hyperenum/enum/service"
	"github.com/mlewan/hyperenum/output"
	"github.com/mlewan/hyperenum/transport/mcp"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Hyperenum"
)

// getSchemasDirDefault returns the default schema directory.
// It first honors the SCHEMAS_DIR environment variable, then falls back to "schemas".
func getSchemasDirDefault() string {
	if dir := os.Getenv("SCHEMAS_DIR"); dir != "" {
		return dir
	}
	return "schemas"
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cmd := &cli.Command{
		Name:           "hyperenum",
		Usage:          "enumerate game option combinations into YAML test matrices",
		Version:        Version,
		DefaultCommand: "generate",
		Commands: []*cli.Command{
			generateCommand(),
			inspectCommand(),
			checkCommand(),
			mcpCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s failed: %v", AppName, err)
	}
}

// generateCommand processes a run configuration and writes one YAML file
// per game into the output directory.
func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate option-combination documents from a run configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "run configuration file (multi-document YAML, one per game)",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "output directory for resultant yaml files",
			},
			&cli.StringFlag{
				Name:  "schemas",
				Value: getSchemasDirDefault(),
				Usage: "directory containing game option schemas",
			},
			&cli.IntFlag{
				Name:    "splits",
				Aliases: []string{"s"},
				Value:   2,
				Usage:   "for ranges, number of sections to split a range into when spec'd \"all\"",
			},
			&cli.IntFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Value:   engine.DefaultThreshold,
				Usage:   "document count above which generation asks for confirmation",
			},
			&cli.StringSliceFlag{
				Name:    "game",
				Aliases: []string{"g"},
				Usage:   "only process the named games from the configuration",
			},
			&cli.StringFlag{
				Name:    "ignore",
				Aliases: []string{"i"},
				Usage:   "comma-separated list of options to ignore entirely",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "proceed past the size threshold without prompting",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print per-game progress",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return fmt.Errorf("a run configuration file is required (--config)")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Restrict to the requested games, keeping track of names that match
	// no configuration document.
	if games := cmd.StringSlice("game"); len(games) > 0 {
		var missing []string
		for _, g := range games {
			if cfg.Find(g) == nil {
				missing = append(missing, g)
			}
		}
		for _, g := range missing {
			log.Printf("Warning: game %q is not in the run configuration", g)
		}

		var kept []config.GameRequest
		for _, req := range cfg.Games {
			for _, g := range games {
				if req.Game == g {
					kept = append(kept, req)
					break
				}
			}
		}
		cfg.Games = kept
		if len(cfg.Games) == 0 {
			return fmt.Errorf("none of the requested games are in the run configuration")
		}
	}

	schemaMgr, err := schema.NewManager(cmd.String("schemas"))
	if err != nil {
		return err
	}

	sink, err := output.NewFileSink(cmd.String("dir"))
	if err != nil {
		return err
	}

	var ignore []string
	if raw := cmd.String("ignore"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				ignore = append(ignore, name)
			}
		}
	}

	confirm := promptConfirm
	if cmd.Bool("yes") {
		confirm = func(game string, total, threshold int) bool { return true }
	}

	svc := service.NewGeneratorService(schemaMgr)
	reports, err := svc.GenerateAll(ctx, cfg, service.GenerateOptions{
		Sink:          sink,
		Confirm:       confirm,
		DefaultSplits: int(cmd.Int("splits")),
		Threshold:     int(cmd.Int("threshold")),
		Ignore:        ignore,
	})
	if err != nil {
		return err
	}

	verbose := cmd.Bool("verbose")
	processed := 0
	var unprocessed []string
	for _, report := range reports {
		switch {
		case report.Err != nil:
			log.Printf("Game %q failed: %v", report.Game, report.Err)
			unprocessed = append(unprocessed, report.Game)
		case report.Skipped:
			log.Printf("Game %q skipped (size threshold declined)", report.Game)
			unprocessed = append(unprocessed, report.Game)
		default:
			processed++
			if verbose {
				log.Printf("Game %q: wrote %d documents to %s",
					report.Game, report.Documents, output.FileNameFor(report.Game))
			}
		}
	}

	log.Printf("Processed %d of %d games", processed, len(reports))
	if len(unprocessed) > 0 {
		log.Printf("Didn't process some games:")
		for _, g := range unprocessed {
			log.Printf("  - %s", g)
		}
	}
	return nil
}

// promptConfirm presents the computed document count on the terminal and
// reads a y/N answer from stdin.
func promptConfirm(game string, total, threshold int) bool {
	fmt.Printf("Game %q would produce %d documents (threshold %d). Continue? [y/N]: ", game, total, threshold)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// checkCommand validates a run configuration against the schemas without
// generating anything.
func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate a run configuration against the schemas without generating",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "run configuration file (multi-document YAML, one per game)",
			},
			&cli.StringFlag{
				Name:  "schemas",
				Value: getSchemasDirDefault(),
				Usage: "directory containing game option schemas",
			},
			&cli.IntFlag{
				Name:    "splits",
				Aliases: []string{"s"},
				Value:   2,
				Usage:   "for ranges, number of sections to split a range into when spec'd \"all\"",
			},
			&cli.IntFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Value:   engine.DefaultThreshold,
				Usage:   "document count above which generation asks for confirmation",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return fmt.Errorf("a run configuration file is required (--config)")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	schemaMgr, err := schema.NewManager(cmd.String("schemas"))
	if err != nil {
		return err
	}

	failed := 0
	for _, req := range cfg.Games {
		result := check.ValidateGame(schemaMgr, req, int(cmd.Int("splits")), int(cmd.Int("threshold")))
		if result.Valid {
			fmt.Printf("%s: OK\n", result.Game)
		} else {
			fmt.Printf("%s: INVALID\n", result.Game)
			failed++
		}
		for _, note := range result.Notes {
			fmt.Printf("  %s\n", note)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d games failed validation", failed, len(cfg.Games))
	}
	return nil
}

// inspectCommand prints the option inventory of every available schema.
func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "list available game schemas and their options",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schemas",
				Value: getSchemasDirDefault(),
				Usage: "directory containing game option schemas",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			schemaMgr, err := schema.NewManager(cmd.String("schemas"))
			if err != nil {
				return err
			}

			infos, err := schemaMgr.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("No game schemas found.")
				return nil
			}

			for _, info := range infos {
				gs, err := schemaMgr.Load(info.SchemaID)
				if err != nil {
					continue
				}
				fmt.Printf("%s (%d options)\n", gs.Game, len(gs.Options))
				for i := range gs.Options {
					opt := &gs.Options[i]
					switch opt.Kind {
					case schema.Choice:
						fmt.Printf("  %-30s choice of [%s], default %v\n",
							opt.Name, strings.Join(opt.Choices, ", "), opt.Default)
					case schema.Range:
						fmt.Printf("  %-30s range [%d, %d], default %v\n",
							opt.Name, opt.Min, opt.Max, opt.Default)
					case schema.Toggle:
						fmt.Printf("  %-30s toggle, default %v\n", opt.Name, opt.Default)
					}
				}
			}
			return nil
		},
	}
}

// mcpCommand serves the generator over MCP stdio.
func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the generator over MCP stdio",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schemas",
				Value: getSchemasDirDefault(),
				Usage: "directory containing game option schemas",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			schemaMgr, err := schema.NewManager(cmd.String("schemas"))
			if err != nil {
				return err
			}

			svc := service.NewGeneratorService(schemaMgr)
			srv := mcp.NewServer(svc)

			log.Printf("%s v%s MCP stdio server ready", AppName, Version)
			return mcpserver.ServeStdio(srv.GetMCPServer())
		},
	}
}
