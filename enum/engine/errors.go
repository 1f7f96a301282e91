package engine

import (
	"errors"
	"fmt"
)

// InvalidSpecError reports an OptionSpec that is inconsistent with its
// option's declared schema. It aborts only the enclosing game.
type InvalidSpecError struct {
	Game   string
	Option string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	switch {
	case e.Game != "" && e.Option != "":
		return fmt.Sprintf("invalid spec for option %q of game %q: %s", e.Option, e.Game, e.Reason)
	case e.Option != "":
		return fmt.Sprintf("invalid spec for option %q: %s", e.Option, e.Reason)
	}
	return fmt.Sprintf("invalid spec: %s", e.Reason)
}

// SchemaLookupError reports a configured option name that has no
// corresponding schema in the game's declared option set.
type SchemaLookupError struct {
	Game   string
	Option string
}

func (e *SchemaLookupError) Error() string {
	if e.Game != "" {
		return fmt.Sprintf("game %q declares no option %q", e.Game, e.Option)
	}
	return fmt.Sprintf("no schema for option %q", e.Option)
}

// withGame stamps the owning game name onto spec and lookup errors so they
// surface with both game and option identified.
func withGame(err error, game string) error {
	var ise *InvalidSpecError
	if errors.As(err, &ise) && ise.Game == "" {
		ise.Game = game
	}
	var sle *SchemaLookupError
	if errors.As(err, &sle) && sle.Game == "" {
		sle.Game = game
	}
	return err
}
