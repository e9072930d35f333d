package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsAppendOrder(t *testing.T) {
	var l Log
	l.Append(FromImage{Image: "a"})
	l.Append(Comment{Text: "b"})
	l.Append(RunCommand{Command: "c"})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []Directive{
		FromImage{Image: "a"},
		Comment{Text: "b"},
		RunCommand{Command: "c"},
	}, l.Directives())
}

func TestAddHelper(t *testing.T) {
	var l Log

	ref, err := l.AddHelper("init.sh", []byte("#!/bin/sh\n"), "755")
	require.NoError(t, err)
	assert.Equal(t, "helpers/init.sh", ref)
	assert.True(t, l.HasHelper("init.sh"))

	ref, err = l.AddHelper("etc/motd", []byte("hi\n"), "644")
	require.NoError(t, err)
	assert.Equal(t, "helpers/etc/motd", ref)

	helpers := l.Helpers()
	require.Len(t, helpers, 2)
	assert.Equal(t, "etc/motd", helpers[0].Name)
	assert.Equal(t, "init.sh", helpers[1].Name)
	assert.Equal(t, uint32(0o755), helpers[1].Perm())
}

func TestAddHelperDuplicate(t *testing.T) {
	var l Log
	_, err := l.AddHelper("motd", []byte("one"), "644")
	require.NoError(t, err)

	_, err = l.AddHelper("motd", []byte("two"), "600")
	require.ErrorIs(t, err, ErrDuplicateHelper)
	assert.Contains(t, err.Error(), "motd")

	helpers := l.Helpers()
	require.Len(t, helpers, 1)
	assert.Equal(t, "one", string(helpers[0].Content))
}

func TestAddHelperInvalid(t *testing.T) {
	tests := []struct {
		name string
		mode string
	}{
		{"", "644"},
		{"/etc/passwd", "644"},
		{"../escape", "644"},
		{"ok", "rw-r--r--"},
		{"ok", "1777"},
		{"ok", "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.mode, func(t *testing.T) {
			var l Log
			_, err := l.AddHelper(tt.name, nil, tt.mode)
			assert.ErrorIs(t, err, ErrInvalidHelper)
		})
	}
}

func TestHelpersAreCopies(t *testing.T) {
	var l Log
	content := []byte("abc")
	_, err := l.AddHelper("x", content, "644")
	require.NoError(t, err)

	content[0] = 'z'
	got := l.Helpers()[0].Content
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	assert.Equal(t, "abc", string(l.Helpers()[0].Content))
}
