package schema

// OptionKind identifies the shape of an option's value domain.
type OptionKind string

const (
	Choice OptionKind = "choice"
	Range  OptionKind = "range"
	Toggle OptionKind = "toggle"

	// Validation constants
	MaxChoices    = 500
	MaxRangeWidth = 1 << 31
)

// OptionSchema is the declared shape of a single option: its kind, its
// value domain, and its default. Schemas are supplied by the target
// application and are never mutated here.
type OptionSchema struct {
	Name    string     `json:"name"`
	Kind    OptionKind `json:"kind"`
	Choices []string   `json:"choices,omitempty"` // Choice: declared values, declaration order
	Min     int        `json:"min,omitempty"`     // Range: inclusive lower bound
	Max     int        `json:"max,omitempty"`     // Range: inclusive upper bound
	Default any        `json:"default"`
}

// GameSchema is one game's full declared option set. The order of Options
// is the declaration order used for enumeration and output.
type GameSchema struct {
	Game        string         `json:"game"`
	Description string         `json:"description,omitempty"`
	Options     []OptionSchema `json:"options"`
}

// SchemaInfo provides summary information about an available game schema.
type SchemaInfo struct {
	Filename    string `json:"filename"`
	SchemaID    string `json:"schema_id"` // identifier used to load the schema
	Game        string `json:"game"`
	Description string `json:"description"`
	OptionCount int    `json:"option_count"`
}

// Option returns the schema for the named option, or nil when the game
// does not declare it.
func (g *GameSchema) Option(name string) *OptionSchema {
	for i := range g.Options {
		if g.Options[i].Name == name {
			return &g.Options[i]
		}
	}
	return nil
}

// OptionNames returns the declared option names in declaration order.
func (g *GameSchema) OptionNames() []string {
	names := make([]string, len(g.Options))
	for i := range g.Options {
		names[i] = g.Options[i].Name
	}
	return names
}

// Cardinality returns the number of distinct values in the option's domain.
func (o *OptionSchema) Cardinality() int {
	switch o.Kind {
	case Choice:
		return len(o.Choices)
	case Range:
		return o.Max - o.Min + 1
	case Toggle:
		return 2
	}
	return 0
}
