// Package config merges configuration fragments into a single tree.
//
// A tree is built from Mapping, Sequence and Scalar values. Fragments come
// from JSON, YAML or TOML files and from key.path=value overrides, and are
// folded together in order by Merge.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Kind is the shape of a configuration value.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Value is a node of a configuration tree.
type Value interface {
	Kind() Kind
	// Interface returns the value as plain Go data
	// (map[string]any, []any, string, int64, float64, bool or nil).
	Interface() any
}

// Mapping is a set of uniquely named values.
type Mapping map[string]Value

// Sequence is an ordered list of values.
type Sequence []Value

// Scalar holds a string, int64, float64, bool or nil.
type Scalar struct {
	v any
}

func (Mapping) Kind() Kind  { return KindMapping }
func (Sequence) Kind() Kind { return KindSequence }
func (Scalar) Kind() Kind   { return KindScalar }

func (m Mapping) Interface() any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Interface()
	}
	return out
}

func (s Sequence) Interface() any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v.Interface()
	}
	return out
}

func (s Scalar) Interface() any { return s.v }

// String returns the scalar formatted as text. Null renders as "".
func (s Scalar) String() string {
	if s.v == nil {
		return ""
	}
	return fmt.Sprint(s.v)
}

// IsNull reports whether the scalar is null.
func (s Scalar) IsNull() bool { return s.v == nil }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{v: s} }

// Int returns an integer scalar.
func Int(i int64) Scalar { return Scalar{v: i} }

// Float returns a floating point scalar.
func Float(f float64) Scalar { return Scalar{v: f} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{v: b} }

// Null returns the null scalar.
func Null() Scalar { return Scalar{} }

// FromAny converts decoded document data into a Value. Mapping keys that
// are not strings are formatted with fmt.Sprint.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case map[string]any:
		m := make(Mapping, len(v))
		for k, item := range v {
			cv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = cv
		}
		return m, nil
	case map[any]any:
		m := make(Mapping, len(v))
		for k, item := range v {
			key := fmt.Sprint(k)
			cv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = cv
		}
		return m, nil
	case []any:
		s := make(Sequence, len(v))
		for i, item := range v {
			cv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			s[i] = cv
		}
		return s, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v, err)
		}
		return Float(f), nil
	case time.Time:
		return String(v.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		// TOML local dates and times
		return String(v.String()), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", raw)
	}
}

// fromUint keeps integers that fit in int64 and turns larger ones into
// floats, as ParseOverride does for out-of-range literals.
func fromUint(v uint64) Scalar {
	if v > math.MaxInt64 {
		return Float(float64(v))
	}
	return Int(int64(v))
}

// Lookup walks a dotted key path such as "user.name".
func (m Mapping) Lookup(path string) (Value, bool) {
	var cur Value = m
	for _, step := range strings.Split(path, ".") {
		mm, ok := cur.(Mapping)
		if !ok {
			return nil, false
		}
		cur, ok = mm[step]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the scalar at path as text.
func (m Mapping) String(path string) (string, bool) {
	v, ok := m.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(Scalar)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// Strings returns the scalars of the sequence at path as text. Non-scalar
// members are skipped.
func (m Mapping) Strings(path string) []string {
	v, ok := m.Lookup(path)
	if !ok {
		return nil
	}
	seq, ok := v.(Sequence)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		if s, ok := item.(Scalar); ok {
			out = append(out, s.String())
		}
	}
	return out
}

// Map returns the mapping at path.
func (m Mapping) Map(path string) (Mapping, bool) {
	v, ok := m.Lookup(path)
	if !ok {
		return nil, false
	}
	mm, ok := v.(Mapping)
	return mm, ok
}

// Keys returns the mapping keys in sorted order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
