package sweep

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := SweepGraph(Paths{Polygon(4, 1.0)})
	test.Error(t, err)
	test.That(t, strings.Contains(buf.String(), "sweep done"), buf.String())
	test.That(t, strings.Contains(buf.String(), "sections=4"), buf.String())

	SetLogger(nil)
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))
}
