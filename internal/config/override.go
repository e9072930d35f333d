package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOverride turns a "a.b.c=value" token into the singleton tree
// {a: {b: {c: value}}}. The value is coerced to an integer (decimal or with a
// 0x, 0o or 0b prefix), else a float, else kept as a string.
func ParseOverride(token string) (Mapping, error) {
	key, raw, ok := strings.Cut(token, "=")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no '='", ErrInvalidOverride, token)
	}

	steps := strings.Split(key, ".")
	for _, step := range steps {
		if step == "" {
			return nil, fmt.Errorf("%w: %q has an empty key", ErrInvalidOverride, token)
		}
	}

	var value Value = coerce(raw)
	for i := len(steps) - 1; i > 0; i-- {
		value = Mapping{steps[i]: value}
	}
	return Mapping{steps[0]: value}, nil
}

// ParseOverrides parses each token with ParseOverride.
func ParseOverrides(tokens []string) ([]Mapping, error) {
	out := make([]Mapping, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseOverride(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func coerce(raw string) Scalar {
	if i, ok := parseInt(raw); ok {
		return Int(i)
	}
	if !isHex(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Float(f)
		}
	}
	return String(raw)
}

// isHex reports a 0x prefix after an optional sign. Hexadecimal floats such
// as 0x1p3 stay strings.
func isHex(raw string) bool {
	digits := strings.TrimLeft(raw, "+-")
	return len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X')
}

// parseInt accepts decimal literals and 0x/0o/0b prefixed literals. A
// decimal with a leading zero, such as "010", is not an integer.
func parseInt(raw string) (int64, bool) {
	digits := strings.TrimLeft(raw, "+-")
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
		default:
			if strings.Trim(digits, "0_") != "" {
				return 0, false
			}
		}
	}
	i, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}
