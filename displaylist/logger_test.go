package displaylist

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLoggerFrameRecord(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	l := New(1)
	require.NoError(t, l.Assign(0, NewRect(image.Rect(0, 0, 20, 20), grey)))
	require.NoError(t, l.Render(newRecorder(32, 32, 16, 16)))

	out := buf.String()
	assert.Contains(t, out, "displaylist: frame")
	assert.Contains(t, out, "tiles=4")
	assert.Contains(t, out, "repainted=4")
	assert.Contains(t, out, "generation=2")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
