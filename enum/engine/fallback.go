package engine

import (
	"math/rand/v2"

	"github.com/mlewan/hyperenum/enum/schema"
)

// Fill supplies the value of a non-enumerated option for the given
// fallback behavior. It never fails: any ambiguity falls back to the
// schema's declared default.
//
// Minimum and maximum treat choice sets as ordered by declaration, so the
// first declared choice is the minimum and the last the maximum. Random
// draws uniformly from the full declared domain on every call; draws are
// not reproducible across runs.
func Fill(opt *schema.OptionSchema, behavior FallbackBehavior) any {
	switch behavior {
	case FallbackMinimum:
		switch opt.Kind {
		case schema.Choice:
			return opt.Choices[0]
		case schema.Range:
			return opt.Min
		case schema.Toggle:
			return false
		}

	case FallbackMaximum:
		switch opt.Kind {
		case schema.Choice:
			return opt.Choices[len(opt.Choices)-1]
		case schema.Range:
			return opt.Max
		case schema.Toggle:
			return true
		}

	case FallbackRandom:
		switch opt.Kind {
		case schema.Choice:
			return opt.Choices[rand.IntN(len(opt.Choices))]
		case schema.Range:
			return opt.Min + rand.IntN(opt.Max-opt.Min+1)
		case schema.Toggle:
			return rand.IntN(2) == 1
		}
	}

	return opt.Default
}
