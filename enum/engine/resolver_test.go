package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mlewan/hyperenum/enum/schema"
)

func choiceOption() *schema.OptionSchema {
	return &schema.OptionSchema{
		Name:    "goal",
		Kind:    schema.Choice,
		Choices: []string{"any", "godhome", "embrace"},
		Default: "any",
	}
}

func rangeOption() *schema.OptionSchema {
	return &schema.OptionSchema{
		Name:    "grub_count",
		Kind:    schema.Range,
		Min:     0,
		Max:     10,
		Default: 5,
	}
}

func toggleOption() *schema.OptionSchema {
	return &schema.OptionSchema{
		Name:    "death_link",
		Kind:    schema.Toggle,
		Default: false,
	}
}

func TestResolveChoiceAll(t *testing.T) {
	values, err := Resolve(choiceOption(), AllSpec(), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := []any{"any", "godhome", "embrace"}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v in declaration order, got %v", expected, values)
	}
}

func TestResolveChoiceExplicit(t *testing.T) {
	// Order preserved, duplicates collapsed.
	values, err := Resolve(choiceOption(), ExplicitSpec("godhome", "any", "godhome"), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := []any{"godhome", "any"}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v, got %v", expected, values)
	}
}

func TestResolveChoiceUndeclared(t *testing.T) {
	_, err := Resolve(choiceOption(), ExplicitSpec("nonsense"), 1)
	if err == nil {
		t.Fatal("Expected error for undeclared choice")
	}

	var ise *InvalidSpecError
	if !errors.As(err, &ise) {
		t.Fatalf("Expected InvalidSpecError, got %T", err)
	}
	if ise.Option != "goal" {
		t.Errorf("Expected option name on error, got %q", ise.Option)
	}
}

func TestResolveChoiceSplitsInvalid(t *testing.T) {
	if _, err := Resolve(choiceOption(), SplitsSpec(3), 1); err == nil {
		t.Error("Expected error for splits on a choice option")
	}
}

func TestResolveRangeAllUsesDefaultSplits(t *testing.T) {
	values, err := Resolve(rangeOption(), AllSpec(), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := []any{0, 5, 10}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v, got %v", expected, values)
	}
}

func TestResolveRangeSplits(t *testing.T) {
	values, err := Resolve(rangeOption(), SplitsSpec(4), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := []any{0, 2, 4, 6, 8, 10}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v, got %v", expected, values)
	}
}

func TestResolveRangeExplicit(t *testing.T) {
	// Explicit range values dedupe and sort ascending.
	values, err := Resolve(rangeOption(), ExplicitSpec(7, 2, 7, 0), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := []any{0, 2, 7}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v, got %v", expected, values)
	}
}

func TestResolveRangeExplicitOutOfRange(t *testing.T) {
	if _, err := Resolve(rangeOption(), ExplicitSpec(11), 1); err == nil {
		t.Error("Expected error for value outside the declared range")
	}
	if _, err := Resolve(rangeOption(), ExplicitSpec("five"), 1); err == nil {
		t.Error("Expected error for non-integer range value")
	}
}

func TestResolveToggle(t *testing.T) {
	values, err := Resolve(toggleOption(), AllSpec(), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(values, []any{false, true}) {
		t.Errorf("Expected [false true], got %v", values)
	}

	values, err = Resolve(toggleOption(), ExplicitSpec(true), 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(values, []any{true}) {
		t.Errorf("Expected [true], got %v", values)
	}

	if _, err := Resolve(toggleOption(), ExplicitSpec("yes"), 1); err == nil {
		t.Error("Expected error for non-boolean toggle value")
	}
	if _, err := Resolve(toggleOption(), SplitsSpec(1), 1); err == nil {
		t.Error("Expected error for splits on a toggle option")
	}
}

func TestGameJobResolveOrderAndLookup(t *testing.T) {
	job := &GameJob{
		Game: "Test Game",
		Options: []schema.OptionSchema{
			*choiceOption(),
			*rangeOption(),
			*toggleOption(),
		},
		Specs: map[string]OptionSpec{
			"death_link": AllSpec(),
			"goal":       AllSpec(),
		},
		Behavior:      FallbackDefault,
		DefaultSplits: 1,
	}

	names, sets, err := job.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Enumerated options follow schema declaration order, not spec order.
	if !reflect.DeepEqual(names, []string{"goal", "death_link"}) {
		t.Errorf("Expected declaration order [goal death_link], got %v", names)
	}
	if len(sets) != 2 || len(sets[0]) != 3 || len(sets[1]) != 2 {
		t.Errorf("Unexpected set sizes: %v", sets)
	}

	job.Specs["no_such_option"] = AllSpec()
	_, _, err = job.Resolve()
	if err == nil {
		t.Fatal("Expected error for spec on undeclared option")
	}
	var sle *SchemaLookupError
	if !errors.As(err, &sle) {
		t.Fatalf("Expected SchemaLookupError, got %T", err)
	}
	if sle.Game != "Test Game" || sle.Option != "no_such_option" {
		t.Errorf("Expected game and option identified, got %+v", sle)
	}
}
