// Package mcp provides the Model Context Protocol surface of hyperenum.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for schema discovery, estimation and generation
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - list_games: List games with an available option schema
//   - describe_game: Show a game's declared options, domains and defaults
//   - estimate: Compute the document count for a request without generating
//   - generate: Run generation for one game and write its output file
//
// Size Guard:
//
// The generate tool honors the same size threshold as the CLI. A request
// whose document count exceeds the threshold is skipped unless the call
// sets confirm=true, mirroring the interactive y/N prompt.
//
// Usage:
//
//	srv := mcp.NewServer(generatorService)
//	server.ServeStdio(srv.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to explore a game's option space,
// estimate matrix sizes before committing to disk, and drive generation
// runs without hand-editing run configurations.
package mcp
