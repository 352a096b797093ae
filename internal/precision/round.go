package precision

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the magnitude of numeric text accepted for rounding;
// anything larger is outside what a float64 column could have held.
const maxExponent = 400

// negligibleMagnitude is the decimal magnitude below which a value rounds to
// zero at every accepted number of places, under either rule.
const negligibleMagnitude = -(MaxPlaces + 1)

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Round rounds a single cell value according to spec.
//
// Numbers (Go numeric types, json.Number, decimal.Decimal) and numeric
// strings are rounded on their shortest decimal representation, so 1.005 is
// treated as exactly 1.005 and not as its binary approximation. Strings stay
// strings; other numbers become int64 when rounding to an integer and
// float64 otherwise. A result that does not fit those types exactly is
// returned as json.Number. When v is not numeric it is returned unchanged
// together with a non-empty reason.
func Round(v interface{}, spec Spec) (interface{}, string) {
	d, reason := asDecimal(v)
	if reason != "" {
		return v, reason
	}

	r := roundDecimal(d, spec)

	if _, ok := v.(string); ok {
		return r.String(), ""
	}

	if spec.IsInteger() {
		if r.GreaterThanOrEqual(minInt64) && r.LessThanOrEqual(maxInt64) {
			return r.IntPart(), ""
		}
		return json.Number(r.String()), ""
	}

	// float64 only when it holds the rounded value exactly
	f := r.InexactFloat64()
	if math.IsInf(f, 0) || !decimal.NewFromFloat(f).Equal(r) {
		return json.Number(r.String()), ""
	}
	return f, ""
}

func roundDecimal(d decimal.Decimal, spec Spec) decimal.Decimal {
	places := int32(spec.Places)
	if spec.rule() == RuleHalfEven {
		return d.RoundBank(places)
	}
	return d.Round(places)
}

// asDecimal attempts to parse a decimal from a cell value. A non-empty
// reason is returned when the value is not a usable number.
func asDecimal(v interface{}) (decimal.Decimal, string) {
	switch value := v.(type) {
	case decimal.Decimal:
		return value, ""
	case json.Number:
		return parseDecimal(string(value))
	case string:
		return parseDecimal(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return decimal.Decimal{}, "non-finite number"
		}
		return decimal.NewFromFloat(value), ""
	case float32:
		if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
			return decimal.Decimal{}, "non-finite number"
		}
		return decimal.NewFromFloat32(value), ""
	case int64:
		return decimal.NewFromInt(value), ""
	case uint64:
		return decimal.NewFromUint64(value), ""
	case int32:
		return decimal.NewFromInt(int64(value)), ""
	case uint32:
		return decimal.NewFromInt(int64(value)), ""
	case int:
		return decimal.NewFromInt(int64(value)), ""
	case uint:
		return decimal.NewFromUint64(uint64(value)), ""
	case int8:
		return decimal.NewFromInt(int64(value)), ""
	case uint8:
		return decimal.NewFromInt(int64(value)), ""
	case int16:
		return decimal.NewFromInt(int64(value)), ""
	case uint16:
		return decimal.NewFromInt(int64(value)), ""
	case bool:
		return decimal.Decimal{}, "boolean value is not numeric"
	case json.RawMessage:
		return decimal.Decimal{}, "nested JSON value is not numeric"
	}
	return decimal.Decimal{}, fmt.Sprintf("unsupported value type %T", v)
}

func parseDecimal(s string) (decimal.Decimal, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, "blank value is not numeric"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, "value is not numeric"
	}
	if d.Exponent() > maxExponent {
		return decimal.Decimal{}, "number is out of range"
	}
	// A tiny exponent with few digits would make rescaling allocate without
	// bound, and such a value rounds to zero anyway.
	if d.Exponent() < -maxExponent && int(d.Exponent())+d.NumDigits() <= negligibleMagnitude {
		return decimal.Zero, ""
	}
	return d, ""
}
