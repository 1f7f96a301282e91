package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// ValidateGameSchema validates a game schema for structural correctness.
// It also normalizes JSON-decoded defaults (numbers arrive as float64) to
// the option's native type.
func ValidateGameSchema(gs *GameSchema) error {
	if gs.Game == "" {
		return fmt.Errorf("schema validation: game name is required")
	}
	if len(gs.Options) == 0 {
		return fmt.Errorf("schema validation: game %q declares no options", gs.Game)
	}

	seen := make(map[string]bool, len(gs.Options))
	for i := range gs.Options {
		opt := &gs.Options[i]
		if opt.Name == "" {
			return fmt.Errorf("schema validation: option %d has no name", i+1)
		}
		if seen[opt.Name] {
			return fmt.Errorf("schema validation: option %q declared twice", opt.Name)
		}
		seen[opt.Name] = true

		switch opt.Kind {
		case Choice:
			if err := validateChoice(opt); err != nil {
				return err
			}
		case Range:
			if err := validateRange(opt); err != nil {
				return err
			}
		case Toggle:
			if err := validateToggle(opt); err != nil {
				return err
			}
		default:
			return fmt.Errorf("schema validation: option %q has unknown kind %q", opt.Name, opt.Kind)
		}
	}

	return nil
}

func validateChoice(opt *OptionSchema) error {
	if len(opt.Choices) == 0 {
		return fmt.Errorf("schema validation: choice option %q declares no choices", opt.Name)
	}
	if len(opt.Choices) > MaxChoices {
		return fmt.Errorf("schema validation: choice option %q declares %d choices, maximum is %d",
			opt.Name, len(opt.Choices), MaxChoices)
	}
	declared := make(map[string]bool, len(opt.Choices))
	for _, c := range opt.Choices {
		if declared[c] {
			return fmt.Errorf("schema validation: choice option %q declares %q twice", opt.Name, c)
		}
		declared[c] = true
	}

	def, ok := opt.Default.(string)
	if !ok {
		return fmt.Errorf("schema validation: choice option %q default must be a string, got %T",
			opt.Name, opt.Default)
	}
	if !declared[def] {
		return fmt.Errorf("schema validation: choice option %q default %q is not a declared choice",
			opt.Name, def)
	}
	return nil
}

func validateRange(opt *OptionSchema) error {
	if opt.Min > opt.Max {
		return fmt.Errorf("schema validation: range option %q has min %d > max %d",
			opt.Name, opt.Min, opt.Max)
	}
	if opt.Max-opt.Min > MaxRangeWidth {
		return fmt.Errorf("schema validation: range option %q is wider than %d", opt.Name, MaxRangeWidth)
	}

	def, err := intDefault(opt.Default)
	if err != nil {
		return fmt.Errorf("schema validation: range option %q: %v", opt.Name, err)
	}
	if def < opt.Min || def > opt.Max {
		return fmt.Errorf("schema validation: range option %q default %d is outside [%d, %d]",
			opt.Name, def, opt.Min, opt.Max)
	}
	opt.Default = def
	return nil
}

func validateToggle(opt *OptionSchema) error {
	if _, ok := opt.Default.(bool); !ok {
		return fmt.Errorf("schema validation: toggle option %q default must be a boolean, got %T",
			opt.Name, opt.Default)
	}
	return nil
}

// intDefault converts a JSON-decoded default into an int. JSON numbers
// decode as float64; anything fractional is rejected.
func intDefault(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("default %v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("default must be an integer, got %T", v)
	}
}

// LoadGameSchema loads and validates a game schema from a JSON file.
func LoadGameSchema(filename string) (*GameSchema, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var gs GameSchema
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %q: %w", filename, err)
	}

	if err := ValidateGameSchema(&gs); err != nil {
		return nil, err
	}

	return &gs, nil
}
