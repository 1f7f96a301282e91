// Package service provides the orchestration layer of hyperenum.
//
// The service package implements:
//   - Per-game generation jobs built from run configuration and schemas
//   - Size-guard confirmation before any document is materialized
//   - Failure isolation at game granularity
//   - Schema discovery for the CLI and MCP surfaces
//
// Core Interfaces:
//
// GeneratorService is the main service interface providing estimation and
// generation. SchemaManager supplies declared game schemas. Sink receives
// the ordered document stream, one DocumentWriter per game.
//
// Architecture:
//
// The service layer sits between the command surfaces (CLI/MCP) and the
// enumeration engine. Games are fully independent units of work processed
// one after another; a game whose specification is rejected yields a
// report carrying its error without affecting sibling games.
//
// Usage:
//
//	schemaMgr, _ := schema.NewManager("schemas")
//	sink, _ := output.NewFileSink("out")
//	svc := service.NewGeneratorService(schemaMgr)
//
//	reports, err := svc.GenerateAll(ctx, cfg, service.GenerateOptions{
//		Sink:          sink,
//		Confirm:       promptOnTerminal,
//		DefaultSplits: 2,
//	})
package service
