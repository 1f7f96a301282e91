package engine

import (
	"fmt"
	"sort"

	"github.com/mlewan/hyperenum/enum/schema"
)

// Resolve produces the finite ordered value set to enumerate for one
// option. defaultSplits is used for range options requested with "all";
// values below 1 fall back to 1.
//
// Choice sets resolve in declaration order, explicit subsets in request
// order with duplicates collapsed. Range sets are strictly ascending and
// always include the range bounds when sampled via splits. Toggles resolve
// to {false, true}.
func Resolve(opt *schema.OptionSchema, spec OptionSpec, defaultSplits int) ([]any, error) {
	if defaultSplits < 1 {
		defaultSplits = 1
	}

	switch opt.Kind {
	case schema.Choice:
		return resolveChoice(opt, spec)
	case schema.Range:
		return resolveRange(opt, spec, defaultSplits)
	case schema.Toggle:
		return resolveToggle(opt, spec)
	}
	return nil, &InvalidSpecError{Option: opt.Name, Reason: fmt.Sprintf("unknown option kind %q", opt.Kind)}
}

func resolveChoice(opt *schema.OptionSchema, spec OptionSpec) ([]any, error) {
	switch spec.Kind {
	case SpecAll:
		values := make([]any, len(opt.Choices))
		for i, c := range opt.Choices {
			values[i] = c
		}
		return values, nil

	case SpecExplicit:
		declared := make(map[string]bool, len(opt.Choices))
		for _, c := range opt.Choices {
			declared[c] = true
		}

		var values []any
		seen := make(map[string]bool, len(spec.Values))
		for _, v := range spec.Values {
			s, ok := v.(string)
			if !ok {
				return nil, &InvalidSpecError{Option: opt.Name,
					Reason: fmt.Sprintf("choice values must be strings, got %v (%T)", v, v)}
			}
			if !declared[s] {
				return nil, &InvalidSpecError{Option: opt.Name,
					Reason: fmt.Sprintf("%q is not a declared choice", s)}
			}
			if seen[s] {
				continue
			}
			seen[s] = true
			values = append(values, s)
		}
		if len(values) == 0 {
			return nil, &InvalidSpecError{Option: opt.Name, Reason: "explicit value list is empty"}
		}
		return values, nil

	case SpecSplits:
		return nil, &InvalidSpecError{Option: opt.Name,
			Reason: "splits apply to range options only; list the choices to enumerate instead"}
	}
	return nil, &InvalidSpecError{Option: opt.Name, Reason: "unknown spec kind"}
}

func resolveRange(opt *schema.OptionSchema, spec OptionSpec, defaultSplits int) ([]any, error) {
	switch spec.Kind {
	case SpecAll:
		return sampleToValues(opt, defaultSplits)

	case SpecSplits:
		return sampleToValues(opt, spec.Splits)

	case SpecExplicit:
		seen := make(map[int]bool, len(spec.Values))
		var points []int
		for _, v := range spec.Values {
			n, ok := v.(int)
			if !ok {
				return nil, &InvalidSpecError{Option: opt.Name,
					Reason: fmt.Sprintf("range values must be integers, got %v (%T)", v, v)}
			}
			if n < opt.Min || n > opt.Max {
				return nil, &InvalidSpecError{Option: opt.Name,
					Reason: fmt.Sprintf("%d is outside the declared range [%d, %d]", n, opt.Min, opt.Max)}
			}
			if seen[n] {
				continue
			}
			seen[n] = true
			points = append(points, n)
		}
		if len(points) == 0 {
			return nil, &InvalidSpecError{Option: opt.Name, Reason: "explicit value list is empty"}
		}
		sort.Ints(points)

		values := make([]any, len(points))
		for i, p := range points {
			values[i] = p
		}
		return values, nil
	}
	return nil, &InvalidSpecError{Option: opt.Name, Reason: "unknown spec kind"}
}

func sampleToValues(opt *schema.OptionSchema, splits int) ([]any, error) {
	points, err := SampleRange(opt.Min, opt.Max, splits)
	if err != nil {
		if ise, ok := err.(*InvalidSpecError); ok {
			ise.Option = opt.Name
		}
		return nil, err
	}
	values := make([]any, len(points))
	for i, p := range points {
		values[i] = p
	}
	return values, nil
}

func resolveToggle(opt *schema.OptionSchema, spec OptionSpec) ([]any, error) {
	switch spec.Kind {
	case SpecAll:
		return []any{false, true}, nil

	case SpecExplicit:
		var values []any
		seen := make(map[bool]bool, 2)
		for _, v := range spec.Values {
			b, ok := v.(bool)
			if !ok {
				return nil, &InvalidSpecError{Option: opt.Name,
					Reason: fmt.Sprintf("toggle values must be booleans, got %v (%T)", v, v)}
			}
			if seen[b] {
				continue
			}
			seen[b] = true
			values = append(values, b)
		}
		if len(values) == 0 {
			return nil, &InvalidSpecError{Option: opt.Name, Reason: "explicit value list is empty"}
		}
		return values, nil

	case SpecSplits:
		return nil, &InvalidSpecError{Option: opt.Name, Reason: "splits apply to range options only"}
	}
	return nil, &InvalidSpecError{Option: opt.Name, Reason: "unknown spec kind"}
}
