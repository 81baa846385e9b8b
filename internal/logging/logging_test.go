package logging_test

import (
	"testing"

	"github.com/tirasundara/dsa-reconciliation/internal/logging"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := logging.New("warn", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("Expected info to be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Errorf("Expected error to be enabled at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := logging.New("loud", true); err == nil {
		t.Errorf("Expected error for an unknown level")
	}
}
