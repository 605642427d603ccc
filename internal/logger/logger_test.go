package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug output leaked at normal level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[INF] ") || !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("missing info line: %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelVerbose)
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "[DBG] ") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
	if log.GetLevel() != LevelVerbose {
		t.Errorf("GetLevel = %v, want %v", log.GetLevel(), LevelVerbose)
	}
}

func TestForDebug(t *testing.T) {
	var buf bytes.Buffer
	ForDebug(false, &buf).Error("quiet")
	if buf.Len() != 0 {
		t.Errorf("expected no output when debug is off, got %q", buf.String())
	}
	ForDebug(true, &buf).Debug("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("expected debug output when debug is on, got %q", buf.String())
	}
}
