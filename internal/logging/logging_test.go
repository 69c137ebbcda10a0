package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogSegmentSizeFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithDomain("primitive").LogSegmentSize(1<<20, 8, 4096)

	out := buf.String()
	require.Contains(t, out, "segment size resolved")
	require.Contains(t, out, "domain=primitive")
	require.Contains(t, out, "segment_size=4096")
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.WithCount(3).LogSegmented(10, 4, 3)
}
