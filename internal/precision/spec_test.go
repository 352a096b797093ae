package precision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/leengari/numsanitize/internal/domain/errors"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name      string
		precision string
		rule      string
		want      Spec
	}{
		{"empty is integer", "", "", Spec{Places: 0, Rule: RuleHalfAway}},
		{"zero", "0", "", Spec{Places: 0, Rule: RuleHalfAway}},
		{"integer keyword", "Integer", "", Spec{Places: 0, Rule: RuleHalfAway}},
		{"int keyword", "int", "half_even", Spec{Places: 0, Rule: RuleHalfEven}},
		{"two places", "2", "", Spec{Places: 2, Rule: RuleHalfAway}},
		{"padded", " 3 ", "bankers", Spec{Places: 3, Rule: RuleHalfEven}},
		{"half up alias", "1", "half-up", Spec{Places: 1, Rule: RuleHalfAway}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.precision, tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecRejectsInvalidPrecision(t *testing.T) {
	for _, input := range []string{"-1", "1.5", "two", "101"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSpec(input, "")
			require.Error(t, err)

			var precisionErr *domainerrors.InvalidPrecisionError
			assert.True(t, errors.As(err, &precisionErr), "expected InvalidPrecisionError, got %T", err)
		})
	}
}

func TestParseSpecRejectsUnknownRule(t *testing.T) {
	_, err := ParseSpec("2", "stochastic")

	var precisionErr *domainerrors.InvalidPrecisionError
	require.True(t, errors.As(err, &precisionErr))
	assert.Equal(t, "stochastic", precisionErr.Value)
}

func TestSpecValidate(t *testing.T) {
	assert.NoError(t, Integer().Validate())
	assert.NoError(t, Spec{Places: 4}.Validate())
	assert.Error(t, Places(-1).Validate())
	assert.Error(t, Places(MaxPlaces+1).Validate())
	assert.Error(t, Places(1).WithRule("up").Validate())
}

func TestSpecString(t *testing.T) {
	assert.Equal(t, "integer (half_away)", Spec{}.String())
	assert.Equal(t, "2 decimal places (half_even)", Places(2).WithRule(RuleHalfEven).String())
}
