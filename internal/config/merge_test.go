package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeInsertsMissingKeys(t *testing.T) {
	target := Mapping{"a": Int(1)}
	require.NoError(t, Merge(target, Mapping{"b": String("x")}))

	assert.Equal(t, Mapping{"a": Int(1), "b": String("x")}, target)
}

func TestMergeDisjointKeysCommute(t *testing.T) {
	a := Mapping{"image": String("debian"), "env": Mapping{"LANG": String("C")}}
	b := Mapping{"pkgs": Sequence{String("vim")}, "count": Int(3)}

	ab, err := MergeAll(a, b)
	require.NoError(t, err)
	ba, err := MergeAll(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestMergeSequencesConcatenate(t *testing.T) {
	cfg, err := MergeAll(
		Mapping{"pkgs": Sequence{String("a"), String("b")}},
		Mapping{"pkgs": Sequence{String("b"), String("a")}},
	)
	require.NoError(t, err)

	assert.Equal(t, Sequence{String("a"), String("b"), String("b"), String("a")}, cfg["pkgs"])
}

func TestMergeNestedMappings(t *testing.T) {
	cfg, err := MergeAll(
		Mapping{"user": Mapping{"name": String("fred"), "uid": Int(1000)}},
		Mapping{"user": Mapping{"name": String("bob"), "shell": String("/bin/sh")}},
	)
	require.NoError(t, err)

	assert.Equal(t, Mapping{
		"name":  String("bob"),
		"uid":   Int(1000),
		"shell": String("/bin/sh"),
	}, cfg["user"])
}

func TestMergeScalarLastWins(t *testing.T) {
	cfg, err := MergeAll(
		Mapping{"n": Int(1)},
		Mapping{"n": String("two")},
		Mapping{"n": Float(3.5)},
	)
	require.NoError(t, err)
	assert.Equal(t, Float(3.5), cfg["n"])
}

func TestMergeTypeConflicts(t *testing.T) {
	tests := []struct {
		name   string
		target Mapping
		source Mapping
		path   string
		want   Kind
		got    Kind
	}{
		{
			name:   "scalar then mapping",
			target: Mapping{"a": Mapping{"b": Int(1)}},
			source: Mapping{"a": Mapping{"b": Mapping{"c": Int(2)}}},
			path:   "a.b",
			want:   KindScalar,
			got:    KindMapping,
		},
		{
			name:   "mapping then scalar",
			target: Mapping{"a": Mapping{"b": Mapping{}}},
			source: Mapping{"a": Mapping{"b": String("x")}},
			path:   "a.b",
			want:   KindMapping,
			got:    KindScalar,
		},
		{
			name:   "sequence then mapping",
			target: Mapping{"pkgs": Sequence{}},
			source: Mapping{"pkgs": Mapping{}},
			path:   "pkgs",
			want:   KindSequence,
			got:    KindMapping,
		},
		{
			name:   "scalar then sequence",
			target: Mapping{"pkgs": String("vim")},
			source: Mapping{"pkgs": Sequence{String("vim")}},
			path:   "pkgs",
			want:   KindScalar,
			got:    KindSequence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Merge(tt.target, tt.source)
			require.ErrorIs(t, err, ErrTypeConflict)

			var tc *TypeConflictError
			require.True(t, errors.As(err, &tc))
			assert.Equal(t, tt.path, tc.KeyPath())
			assert.Equal(t, tt.want, tc.Target)
			assert.Equal(t, tt.got, tc.Source)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestMergeDoesNotAliasSources(t *testing.T) {
	first := Mapping{"pkgs": Sequence{String("a")}, "user": Mapping{"name": String("fred")}}
	second := Mapping{"pkgs": Sequence{String("b")}, "user": Mapping{"name": String("bob")}}

	_, err := MergeAll(first, second)
	require.NoError(t, err)

	assert.Equal(t, Sequence{String("a")}, first["pkgs"])
	assert.Equal(t, Mapping{"name": String("fred")}, first["user"])
}

func TestMappingAccessors(t *testing.T) {
	cfg := Mapping{
		"image": String("debian:12"),
		"pkgs":  Sequence{String("a"), Int(2), Mapping{}},
		"user":  Mapping{"name": String("fred")},
	}

	s, ok := cfg.String("user.name")
	assert.True(t, ok)
	assert.Equal(t, "fred", s)

	_, ok = cfg.String("user.missing")
	assert.False(t, ok)
	_, ok = cfg.String("image.tag")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "2"}, cfg.Strings("pkgs"))
	assert.Nil(t, cfg.Strings("image"))

	user, ok := cfg.Map("user")
	assert.True(t, ok)
	assert.Equal(t, []string{"name"}, user.Keys())
	assert.Equal(t, []string{"image", "pkgs", "user"}, cfg.Keys())
}
