// Package schema models the option schemas of target games.
//
// The schema package handles:
//   - Loading per-game option schemas from JSON files
//   - Schema validation and default normalization
//   - Schema discovery and listing
//
// Schema Format:
//
// Game schemas are stored as JSON files in the schemas directory, one file
// per game. Each schema declares the game's name and its ordered option
// list. Every option has a kind:
//   - choice: a discrete set of named values
//   - range:  an inclusive integer interval [min, max]
//   - toggle: a boolean
//
// The order of the options array is the declaration order; it governs
// enumeration order and the order of entries in generated documents.
//
// Usage:
//
//	manager, err := schema.NewManager("schemas")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific game schema
//	gs, err := manager.LoadByGame("Hollow Knight")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List available schemas
//	infos, err := manager.List()
//
// Validation:
//
// All schemas are validated for unique option names, known kinds, non-empty
// choice sets, well-ordered range bounds, and defaults that fall inside the
// declared domain.
package schema
