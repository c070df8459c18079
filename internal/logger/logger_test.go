package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevelsFollowMode(t *testing.T) {
	dev, err := New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("development logger should enable debug")
	}

	prod, err := New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	if prod.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("production logger should not enable debug")
	}
	if !prod.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("production logger should enable info")
	}
}
