package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", false, &buf)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("Expected JSON warn line, got %s", out)
	}
}

func TestNewUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("loud", false, &buf)
	l.Debug().Msg("debug")
	l.Info().Msg("info")
	if strings.Contains(buf.String(), "debug") || !strings.Contains(buf.String(), "info") {
		t.Errorf("Unknown level should fall back to info, got %s", buf.String())
	}
}
