// Package engine provides the core enumeration logic of hyperenum.
//
// The engine package implements:
//   - Resolution of option specs into finite ordered value sets
//   - Deterministic sub-sampling of numeric ranges via split points
//   - Lazy cartesian-product enumeration of resolved value sets
//   - Fallback filling for non-enumerated options
//   - Document assembly and size-guard back-pressure
//
// Core Types:
//
// GameJob bundles one game's declared option schemas, its enumeration
// specs, and its fallback behavior. Resolve turns specs into value sets,
// Enumerator walks their cartesian product, and BuildDocument merges each
// combination with fallback values into a Document.
//
// Usage:
//
//	names, sets, err := job.Resolve()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	enum := engine.NewEnumerator(names, sets)
//	for i := 0; i < enum.Total(); i++ {
//		doc := engine.BuildDocument(job, i+1, enum.At(i))
//		// hand doc to the output sink
//	}
//
// Ordering:
//
// Combinations are produced in lexicographic order over schema declaration
// order, with the last declared option varying fastest. Re-enumerating the
// same resolved sets always yields the same sequence; nothing is skipped
// or deduplicated.
package engine
