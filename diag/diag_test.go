package diag

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Format(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, LevelInfo)

	c.Log(LevelError, "Attempted to allocate 0 bytes")
	c.Log(LevelWarning, "Attempted to free a nil block", "op", "release")
	c.Log(LevelInfo, "odd attrs", "dangling")

	assert.Equal(t,
		"[Error]: Attempted to allocate 0 bytes\n"+
			"[Warning]: Attempted to free a nil block op=release\n"+
			"[Info]: odd attrs !BADKEY=dangling\n",
		out.String())
}

func TestConsole_MinLevel(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, LevelWarning)

	c.Log(LevelInfo, "dropped")
	c.Log(LevelWarning, "kept")
	c.Log(LevelError, "kept too")

	assert.Equal(t, "[Warning]: kept\n[Error]: kept too\n", out.String())
}

func TestSlog_Forwards(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	s := NewSlog(l)

	s.Log(LevelWarning, "release of nil block", "bytes", 0)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "release of nil block", rec["msg"])
	assert.EqualValues(t, 0, rec["bytes"])
	assert.Same(t, l, s.Logger())
}

func TestLevel_ParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"error", LevelError},
		{"WARNING", LevelWarning},
		{"warn", LevelWarning},
		{" info ", LevelInfo},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("debug")
	require.Error(t, err)

	assert.Equal(t, "Error", LevelError.String())
	assert.Equal(t, "Unknown", Level(9).String())
	assert.Equal(t, slog.LevelWarn, LevelWarning.Slog())
}

func TestInstall_DisposesPrevious(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()
	t.Cleanup(func() { Install(nil) })

	Install(first)
	require.Same(t, first, Active())
	require.False(t, first.Closed())

	// Reinstalling the same sink must not dispose of it.
	Install(first)
	require.False(t, first.Closed())

	Install(second)
	assert.True(t, first.Closed(), "replaced sink should be closed")
	assert.False(t, second.Closed())
	assert.Same(t, second, Active())
}

func TestResolve(t *testing.T) {
	rec := NewRecorder()
	t.Cleanup(func() { Install(nil) })
	Install(rec)

	own := NewRecorder()
	assert.Same(t, own, Resolve(own))
	assert.Same(t, rec, Resolve(nil))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Log(LevelError, "a")
	r.Log(LevelWarning, "b", "k", 1)
	r.Log(LevelError, "c")

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, r.Count(LevelError))
	assert.Equal(t, 1, r.Count(LevelWarning))
	assert.Equal(t, []any{"k", 1}, r.Entries()[1].Attrs)

	r.Reset()
	assert.Zero(t, r.Len())
}
