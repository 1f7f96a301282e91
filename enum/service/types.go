package service

// GameInfo summarizes one available game schema
type GameInfo struct {
	Game        string `json:"game"`
	SchemaID    string `json:"schema_id"`
	Description string `json:"description,omitempty"`
	OptionCount int    `json:"option_count"`
}

// OptionSetSize is the resolved value-set size of one enumerated option
type OptionSetSize struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Estimate is the pre-flight document count for one game, computed from
// resolved-set sizes without materializing any combination
type Estimate struct {
	Game            string          `json:"game"`
	Total           int             `json:"total"`
	Threshold       int             `json:"threshold"`
	ConfirmRequired bool            `json:"confirm_required"`
	Sets            []OptionSetSize `json:"sets"`
}

// GameReport is the outcome of generating one game. Err is non-nil when
// the game's configuration was rejected; sibling games are unaffected.
type GameReport struct {
	Game      string `json:"game"`
	Documents int    `json:"documents"`
	Skipped   bool   `json:"skipped"` // size-guard confirmation declined
	Err       error  `json:"-"`
}
