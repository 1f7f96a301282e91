package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mlewan/hyperenum/enum/config"
	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/service"
	"github.com/mlewan/hyperenum/output"
)

// Server exposes the generator service as MCP tools
type Server struct {
	svc       service.GeneratorService
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server wrapping the generator service
func NewServer(svc service.GeneratorService) *Server {
	s := &Server{svc: svc}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Hyperenum Option Matrix Generator",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Hyperenum - MCP Interface

Hyperenum enumerates combinations of game options and writes one YAML
document per combination, one file per game.

AVAILABLE TOOLS:
- list_games: List games with an available option schema
- describe_game: Show a game's declared options, domains and defaults
- estimate: Compute the document count for an enumeration request without generating
- generate: Run generation for one game and write its output file

Option specs: "all" enumerates the full domain, a list enumerates exactly
those values, and an integer is a splits count for range options.
Generation past the size threshold requires confirm=true.`),
	)

	// Register all tools
	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all games with an available option schema",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListGames)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_game",
		Description: "Show the declared options of one game: kind, domain and default",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game": map[string]interface{}{
					"type":        "string",
					"description": "Game name",
				},
			},
			Required: []string{"game"},
		},
	}, s.handleDescribeGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "estimate",
		Description: "Compute how many documents an enumeration request would produce, per option and in total, without generating anything",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game": map[string]interface{}{
					"type":        "string",
					"description": "Game name",
				},
				"options": map[string]interface{}{
					"type":        "object",
					"description": "Option name to spec: \"all\", a value list, or an integer splits count",
				},
				"splits": map[string]interface{}{
					"type":        "integer",
					"description": "Default splits for range options spec'd \"all\" (default 2)",
				},
				"threshold": map[string]interface{}{
					"type":        "integer",
					"description": "Size-guard threshold (default 1000)",
				},
			},
			Required: []string{"game", "options"},
		},
	}, s.handleEstimate)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "generate",
		Description: "Generate every option combination for one game into a YAML file in the output directory",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game": map[string]interface{}{
					"type":        "string",
					"description": "Game name",
				},
				"options": map[string]interface{}{
					"type":        "object",
					"description": "Option name to spec: \"all\", a value list, or an integer splits count",
				},
				"others": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"default", "random", "minimum", "maximum"},
					"description": "Fallback behavior for non-enumerated options (default: default)",
				},
				"dir": map[string]interface{}{
					"type":        "string",
					"description": "Output directory (default \".\")",
				},
				"splits": map[string]interface{}{
					"type":        "integer",
					"description": "Default splits for range options spec'd \"all\" (default 2)",
				},
				"threshold": map[string]interface{}{
					"type":        "integer",
					"description": "Size-guard threshold (default 1000)",
				},
				"confirm": map[string]interface{}{
					"type":        "boolean",
					"description": "Confirm generation past the size threshold",
				},
			},
			Required: []string{"game", "options"},
		},
	}, s.handleGenerate)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// Tool handlers

func (s *Server) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	games, err := s.svc.ListGames(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Available Games (%d):\n\n", len(games))
	for _, g := range games {
		result += fmt.Sprintf("- %s (%d options)", g.Game, g.OptionCount)
		if g.Description != "" {
			result += " — " + g.Description
		}
		result += "\n"
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleDescribeGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	game, _ := args["game"].(string)

	gs, err := s.svc.DescribeGame(ctx, game)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Game: %s\n", gs.Game)
	if gs.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", gs.Description)
	}
	fmt.Fprintf(&b, "Options (%d):\n", len(gs.Options))
	for i := range gs.Options {
		opt := &gs.Options[i]
		switch opt.Kind {
		case "choice":
			fmt.Fprintf(&b, "- %s: choice of [%s], default %v\n",
				opt.Name, strings.Join(opt.Choices, ", "), opt.Default)
		case "range":
			fmt.Fprintf(&b, "- %s: range [%d, %d], default %v\n",
				opt.Name, opt.Min, opt.Max, opt.Default)
		case "toggle":
			fmt.Fprintf(&b, "- %s: toggle, default %v\n", opt.Name, opt.Default)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleEstimate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	req, opts, err := requestFromArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	est, err := s.svc.Estimate(ctx, req, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Game: %s\n", est.Game)
	for _, set := range est.Sets {
		fmt.Fprintf(&b, "- %s: %d values\n", set.Name, set.Size)
	}
	fmt.Fprintf(&b, "Total documents: %d (threshold %d)\n", est.Total, est.Threshold)
	if est.ConfirmRequired {
		b.WriteString("Confirmation required: the total exceeds the threshold.\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	req, opts, err := requestFromArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dir, _ := args["dir"].(string)
	if dir == "" {
		dir = "."
	}
	sink, err := output.NewFileSink(dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts.Sink = sink

	if confirm, _ := args["confirm"].(bool); confirm {
		opts.Confirm = func(game string, total, threshold int) bool { return true }
	}

	report, err := s.svc.Generate(ctx, req, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if report.Skipped {
		est, estErr := s.svc.Estimate(ctx, req, opts)
		if estErr == nil {
			return mcp.NewToolResultText(fmt.Sprintf(
				"Skipped %s: %d documents exceed the threshold of %d. Re-run with confirm=true to generate anyway.",
				report.Game, est.Total, est.Threshold)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Skipped %s: size threshold exceeded.", report.Game)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Generated %d documents for %s into %s",
		report.Documents, report.Game, output.FileNameFor(report.Game))), nil
}

// requestFromArgs converts raw MCP arguments into a game request plus the
// run-wide generation options.
func requestFromArgs(args map[string]interface{}) (config.GameRequest, service.GenerateOptions, error) {
	var req config.GameRequest
	var opts service.GenerateOptions

	game, _ := args["game"].(string)
	if game == "" {
		return req, opts, fmt.Errorf("game is required")
	}
	req.Game = game

	rawOptions, _ := args["options"].(map[string]interface{})
	if len(rawOptions) == 0 {
		return req, opts, fmt.Errorf("options must name at least one option to enumerate")
	}

	req.Options = make(map[string]engine.OptionSpec, len(rawOptions))
	names := make([]string, 0, len(rawOptions))
	for name := range rawOptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spec, err := specFromArg(rawOptions[name])
		if err != nil {
			return req, opts, fmt.Errorf("option %q: %v", name, err)
		}
		req.Options[name] = spec
	}

	others, _ := args["others"].(string)
	behavior, err := engine.ParseFallbackBehavior(others)
	if err != nil {
		return req, opts, err
	}
	req.Others = behavior

	opts.DefaultSplits = 2
	if splits, ok := args["splits"].(float64); ok {
		opts.DefaultSplits = int(splits)
	}
	if threshold, ok := args["threshold"].(float64); ok {
		opts.Threshold = int(threshold)
	}
	return req, opts, nil
}

// specFromArg converts one JSON-decoded spec value into an OptionSpec,
// mirroring the run-configuration rules.
func specFromArg(v interface{}) (engine.OptionSpec, error) {
	switch value := v.(type) {
	case string:
		if strings.EqualFold(value, "all") {
			return engine.AllSpec(), nil
		}
		return engine.ExplicitSpec(value), nil
	case float64:
		if value != float64(int(value)) {
			return engine.OptionSpec{}, fmt.Errorf("splits count must be an integer, got %v", value)
		}
		return engine.SplitsSpec(int(value)), nil
	case bool:
		return engine.ExplicitSpec(value), nil
	case []interface{}:
		values := make([]any, 0, len(value))
		for _, item := range value {
			if f, ok := item.(float64); ok && f == float64(int(f)) {
				values = append(values, int(f))
				continue
			}
			values = append(values, item)
		}
		return engine.ExplicitSpec(values...), nil
	}
	return engine.OptionSpec{}, fmt.Errorf("unsupported spec value %v (%T)", v, v)
}
