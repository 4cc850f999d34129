package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "key", "todo_exam_list_1")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "todo_exam_list_1")
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	l, c, err := OpenFile("", Options{})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NoError(t, c.Close())

	path := filepath.Join(t.TempDir(), "logs", "tui.log")
	l, c, err = OpenFile(path, Options{Level: "info"})
	require.NoError(t, err)
	l.Info("session started")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "session started"))
}
