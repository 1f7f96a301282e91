package engine

import (
	"fmt"

	"github.com/mlewan/hyperenum/enum/schema"
)

// SpecKind identifies which variant of an OptionSpec is populated.
type SpecKind int

const (
	// SpecAll enumerates every value in the option's declared domain.
	SpecAll SpecKind = iota
	// SpecExplicit enumerates an explicit subset of values.
	SpecExplicit
	// SpecSplits sub-samples a numeric range into splits+2 points.
	SpecSplits
)

// OptionSpec is a user's enumeration request for one option. Exactly one
// variant applies, selected by Kind.
type OptionSpec struct {
	Kind   SpecKind
	Values []any // SpecExplicit: requested values, order preserved
	Splits int   // SpecSplits: requested split count
}

// AllSpec requests enumeration of the full declared domain.
func AllSpec() OptionSpec {
	return OptionSpec{Kind: SpecAll}
}

// ExplicitSpec requests enumeration of the given values.
func ExplicitSpec(values ...any) OptionSpec {
	return OptionSpec{Kind: SpecExplicit, Values: values}
}

// SplitsSpec requests range sub-sampling with the given split count.
func SplitsSpec(n int) OptionSpec {
	return OptionSpec{Kind: SpecSplits, Splits: n}
}

// FallbackBehavior governs how non-enumerated options are filled.
type FallbackBehavior string

const (
	FallbackDefault FallbackBehavior = "default"
	FallbackRandom  FallbackBehavior = "random"
	FallbackMinimum FallbackBehavior = "minimum"
	FallbackMaximum FallbackBehavior = "maximum"
)

// ParseFallbackBehavior parses a configuration token into a FallbackBehavior.
func ParseFallbackBehavior(s string) (FallbackBehavior, error) {
	switch FallbackBehavior(s) {
	case FallbackDefault, FallbackRandom, FallbackMinimum, FallbackMaximum:
		return FallbackBehavior(s), nil
	case "":
		return FallbackDefault, nil
	}
	return "", fmt.Errorf("unknown fallback behavior %q (want default, random, minimum or maximum)", s)
}

// Combination maps option names to one concrete value each, covering
// exactly the options marked for enumeration.
type Combination map[string]any

// OptionValue is one named option entry of a document.
type OptionValue struct {
	Name  string
	Value any
}

// Document is one complete option assignment for a game: one entry per
// declared option plus any fixed metadata, in output order.
type Document struct {
	Game        string
	Name        string
	Description string
	Options     []OptionValue
}

// Value returns the document's value for the named option.
func (d *Document) Value(name string) (any, bool) {
	for _, ov := range d.Options {
		if ov.Name == name {
			return ov.Value, true
		}
	}
	return nil, false
}

// GameJob is one game's full unit of work: its declared option set (after
// any ignore filtering), its enumeration specs, its fallback behavior, and
// fixed metadata merged into every document.
type GameJob struct {
	Game          string
	Options       []schema.OptionSchema
	Specs         map[string]OptionSpec
	Behavior      FallbackBehavior
	Fixed         map[string]any
	DefaultSplits int
}

// Resolve resolves every enumerated option of the job into its concrete
// value set, in schema declaration order. It fails on the first option
// whose spec is inconsistent with its schema, and on spec'd options the
// game does not declare.
func (j *GameJob) Resolve() ([]string, [][]any, error) {
	declared := make(map[string]bool, len(j.Options))
	var names []string
	var sets [][]any

	for i := range j.Options {
		opt := &j.Options[i]
		declared[opt.Name] = true

		spec, ok := j.Specs[opt.Name]
		if !ok {
			continue
		}

		set, err := Resolve(opt, spec, j.DefaultSplits)
		if err != nil {
			return nil, nil, withGame(err, j.Game)
		}
		names = append(names, opt.Name)
		sets = append(sets, set)
	}

	for name := range j.Specs {
		if !declared[name] {
			return nil, nil, &SchemaLookupError{Game: j.Game, Option: name}
		}
	}

	return names, sets, nil
}
