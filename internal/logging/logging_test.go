package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"siteaudit/internal/logging"
)

func TestNewDefaultLevel(t *testing.T) {
	log, err := logging.New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer log.Sync()
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug must be disabled by default")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn must be enabled by default")
	}
}

func TestNewVerbose(t *testing.T) {
	log, err := logging.New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer log.Sync()
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose must enable debug")
	}
}
