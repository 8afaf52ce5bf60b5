package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"", log.InfoLevel},
		{"bogus", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("expected json formatter")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("expected logfmt formatter")
	}
	if ParseFormatter("") != log.TextFormatter {
		t.Error("expected text formatter by default")
	}
}

func TestNewFromConfig_DebugOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "error", "text", true)
	logger.Debug("reloaded", "total", 3)

	out := buf.String()
	if !strings.Contains(out, "reloaded") || !strings.Contains(out, "total=3") {
		t.Errorf("expected debug line with fields, got %q", out)
	}
}

func TestNewFromConfig_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "warn", "text", false)
	logger.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected info suppressed at warn level, got %q", buf.String())
	}
}

func TestNewFromConfig_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "info", "json", false)
	logger.Error("fetch failed", "flow", "load")

	out := buf.String()
	if !strings.Contains(out, `"msg":"fetch failed"`) || !strings.Contains(out, `"flow":"load"`) {
		t.Errorf("expected JSON log line, got %q", out)
	}
}
