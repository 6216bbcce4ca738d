package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Debug("hidden")
	l.Info("catalog loaded")
	l.Warn("layer missing")

	assert.Equal(t, "catalog loaded\n! layer missing\n", buf.String())
}

func TestLogger_SetVerbose(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.SetVerbose(true)
	l.Debug("recipe zlib: exact match")
	l.SetVerbose(false)
	l.Debug("hidden again")

	assert.Equal(t, "● recipe zlib: exact match\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	l, buf := newBufferedLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("connection refused"), "failed to fetch catalog"), "url", "https://example.com")
	l.Error(err)
	l.Error(nil)

	want := "✗ Error: failed to fetch catalog\n" +
		"       url: https://example.com\n\n" +
		"  Caused by:\n" +
		"    → connection refused\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.SetJSON(true)
	l.SetVerbose(true)

	l.Debug("debug line")
	l.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "debug line", rec["msg"])

	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}
