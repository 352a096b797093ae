package precision

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/numsanitize/internal/domain/errors"
)

// Rule selects how values exactly halfway between two candidates are rounded
type Rule string

const (
	// RuleHalfAway rounds halves away from zero: 2.5 -> 3, -2.5 -> -3
	RuleHalfAway Rule = "half_away"
	// RuleHalfEven rounds halves to the even neighbour: 2.5 -> 2, 3.5 -> 4
	RuleHalfEven Rule = "half_even"
)

// MaxPlaces bounds the number of decimal places a Spec may request
const MaxPlaces = 100

var ruleAliases = map[string]Rule{
	"half_away":           RuleHalfAway,
	"half_away_from_zero": RuleHalfAway,
	"half_up":             RuleHalfAway,
	"half_even":           RuleHalfEven,
	"bankers":             RuleHalfEven,
}

// ParseRule resolves a rule name or alias. An empty name selects RuleHalfAway.
func ParseRule(name string) (Rule, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "" {
		return RuleHalfAway, nil
	}
	rule, ok := ruleAliases[key]
	if !ok {
		return "", &errors.InvalidPrecisionError{
			Value:  name,
			Reason: "unknown rounding rule, use half_away or half_even",
		}
	}
	return rule, nil
}

// Spec describes the precision to reduce a column to
type Spec struct {
	Places int  // decimal places to keep, 0 rounds to the nearest integer
	Rule   Rule // empty means RuleHalfAway
}

// Integer rounds to the nearest integer
func Integer() Spec {
	return Spec{Places: 0, Rule: RuleHalfAway}
}

// Places rounds to n decimal places
func Places(n int) Spec {
	return Spec{Places: n, Rule: RuleHalfAway}
}

// WithRule returns a copy of s using rule
func (s Spec) WithRule(rule Rule) Spec {
	s.Rule = rule
	return s
}

// IsInteger reports whether values are rounded to whole numbers
func (s Spec) IsInteger() bool {
	return s.Places == 0
}

func (s Spec) rule() Rule {
	if s.Rule == "" {
		return RuleHalfAway
	}
	return s.Rule
}

func (s Spec) Validate() error {
	if s.Places < 0 {
		return errors.NewNegativePrecision(s.Places)
	}
	if s.Places > MaxPlaces {
		return &errors.InvalidPrecisionError{
			Value:  strconv.Itoa(s.Places),
			Reason: fmt.Sprintf("at most %d decimal places are supported", MaxPlaces),
		}
	}
	if _, err := ParseRule(string(s.Rule)); err != nil {
		return err
	}
	return nil
}

func (s Spec) String() string {
	if s.IsInteger() {
		return fmt.Sprintf("integer (%s)", s.rule())
	}
	return fmt.Sprintf("%d decimal places (%s)", s.Places, s.rule())
}

// ParseSpec builds a Spec from user input. precision is a whole number of
// decimal places or "integer"; an empty string means 0.
func ParseSpec(precision, rule string) (Spec, error) {
	r, err := ParseRule(rule)
	if err != nil {
		return Spec{}, err
	}

	p := strings.ToLower(strings.TrimSpace(precision))
	switch p {
	case "", "integer", "int":
		return Integer().WithRule(r), nil
	}

	n, err := strconv.Atoi(p)
	if err != nil {
		return Spec{}, &errors.InvalidPrecisionError{
			Value:  precision,
			Reason: "must be a whole number of decimal places or 'integer'",
		}
	}

	spec := Places(n).WithRule(r)
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
