package mdllog

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewDiscardDropsMessages(t *testing.T) {
	log := NewDiscard()
	log.Info("should not panic or write anywhere")
	log.Sync()
}

func TestNewWritesAtOrAboveConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)
	log.Info("swallowed")
	log.Warn("kept")
	log.Sync()

	out := buf.String()
	if strings.Contains(out, "swallowed") {
		t.Errorf("expected Info message to be filtered out at warn level, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("expected Warn message in output, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
