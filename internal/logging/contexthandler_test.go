package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/myrjola/trackmate/internal/logging"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug, false)

	ctx := logging.WithAttrs(t.Context(), slog.Int("week", 2))
	ctx = logging.WithAttrs(ctx, slog.Int("day", 3))
	logger.LogAttrs(ctx, slog.LevelInfo, "logged set")

	line := buf.String()
	for _, want := range []string{"msg=\"logged set\"", "week=2", "day=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q to contain %q", line, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithAttrs_siblingsDoNotShareAttrs(t *testing.T) {
	parent := logging.WithAttrs(t.Context(), slog.String("trace_id", "abc"))
	left := logging.WithAttrs(parent, slog.String("uri", "/left"))
	right := logging.WithAttrs(parent, slog.String("uri", "/right"))

	for name, tc := range map[string]struct {
		attrs []slog.Attr
		want  string
	}{
		"left":  {logging.Attrs(left), "/left"},
		"right": {logging.Attrs(right), "/right"},
	} {
		if len(tc.attrs) != 2 || tc.attrs[1].Value.String() != tc.want {
			t.Errorf("%s attrs = %v, want trace_id and uri=%s", name, tc.attrs, tc.want)
		}
	}
	if n := len(logging.Attrs(parent)); n != 1 {
		t.Errorf("parent has %d attrs, want 1", n)
	}
}
