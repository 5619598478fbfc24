package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ScalableUnit is the platform's device-independent length unit.
const ScalableUnit = "rpx"

var numericPattern = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)$`)

// baseUnits are the units whose presence marks a magnitude as already complete.
var baseUnits = []string{"px", "%", ScalableUnit}

// IsNumeric reports whether s is a bare number such as "20", "-4" or "0.5".
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// HasUnit reports whether s contains one of the base units or any of extra.
func HasUnit(s string, extra ...string) bool {
	for _, unit := range baseUnits {
		if strings.Contains(s, unit) {
			return true
		}
	}
	for _, unit := range extra {
		if strings.Contains(s, unit) {
			return true
		}
	}
	return false
}

// Magnitude strips the prefix from token and completes the remainder with
// unit when it is a bare number. Values that already carry a unit, or
// keywords such as "auto", are returned as-is.
func Magnitude(token, prefix, unit string) string {
	value := strings.TrimPrefix(token, prefix)
	if !IsNumeric(value) {
		return value
	}
	return value + unit
}

// PropertyHandler emits "property: value;" with the scalable unit appended to
// bare numbers. prefix includes the trailing dash.
func PropertyHandler(property, prefix string) Handler {
	return func(token string) string {
		return fmt.Sprintf("%s: %s;", property, Magnitude(token, prefix, ScalableUnit))
	}
}

// UnitHandler is PropertyHandler with a fixed unit such as vw or %.
func UnitHandler(property, prefix, unit string) Handler {
	return func(token string) string {
		return fmt.Sprintf("%s: %s;", property, Magnitude(token, prefix, unit))
	}
}

// DualPropertyHandler writes the same magnitude to two properties, as used by
// axis shorthands like px- and my-.
func DualPropertyHandler(first, second, prefix string) Handler {
	return func(token string) string {
		value := Magnitude(token, prefix, ScalableUnit)
		return fmt.Sprintf("%s: %s; %s: %s;", first, value, second, value)
	}
}

// SimpleHandler copies the remainder after prefix verbatim into property.
func SimpleHandler(property, prefix string) Handler {
	return func(token string) string {
		return fmt.Sprintf("%s: %s;", property, strings.TrimPrefix(token, prefix))
	}
}

// ComplexHandler prepends a fixed block of declarations to a parameterised
// property.
func ComplexHandler(base, prefix, property string) Handler {
	return func(token string) string {
		if property == "" {
			return base
		}
		return fmt.Sprintf("%s %s: %s;", base, property, strings.TrimPrefix(token, prefix))
	}
}

// NumericHandler parses the remainder as a number and passes it through
// transform. Non-numeric input resolves to nothing.
func NumericHandler(property, prefix string, transform func(float64) float64) Handler {
	return func(token string) string {
		n, err := strconv.ParseFloat(strings.TrimPrefix(token, prefix), 64)
		if err != nil {
			return ""
		}
		if transform != nil {
			n = transform(n)
		}
		return fmt.Sprintf("%s: %s;", property, strconv.FormatFloat(n, 'f', -1, 64))
	}
}

// FilterHandler wraps the magnitude in a CSS filter function such as blur().
func FilterHandler(property, prefix, function string) Handler {
	return func(token string) string {
		return fmt.Sprintf("%s: %s(%s);", property, function, Magnitude(token, prefix, ScalableUnit))
	}
}

// staticProperties expands key -> value pairs into key -> "property: value;".
func staticProperties(property string, values map[string]string) Config {
	cfg := make(Config, len(values))
	for key, value := range values {
		cfg[key] = Literal(fmt.Sprintf("%s: %s;", property, value))
	}
	return cfg
}
