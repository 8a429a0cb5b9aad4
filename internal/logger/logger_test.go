package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "console", Output: &buf})

	l.Debug("hidden")
	l.With("mode", "orbit").WithGroup("fps").Info("report", "frames", 60)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	for _, want := range []string{"INFO  report", "  mode=orbit", "  fps.frames=60"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "\n") || strings.Count(out, "\n") != 1 {
		t.Errorf("want exactly one line, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})
	l.Debug("resize", "width", 640)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "resize" || rec["width"] != float64(640) {
		t.Errorf("record = %v", rec)
	}
}

func TestInitInstallsLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	l := Init(Config{Level: "warn", Format: "text", Output: &buf})
	if slog.Default() != l {
		t.Fatal("Init did not install the logger as the slog default")
	}
	slog.Info("below level")
	slog.Warn("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("slog default not replaced: %q", buf.String())
	}
	if strings.Contains(buf.String(), "below level") {
		t.Errorf("info record written at warn level: %q", buf.String())
	}
}

func TestLevelTag(t *testing.T) {
	tests := map[slog.Level]string{
		slog.LevelError: "ERROR",
		slog.LevelWarn:  "WARN ",
		slog.LevelInfo:  "INFO ",
		slog.LevelDebug: "DEBUG",
	}
	for level, want := range tests {
		if got := levelTag(level); got != want {
			t.Errorf("levelTag(%v) = %q, want %q", level, got, want)
		}
	}
}
