package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, closer, err := New("info", logFile)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info().Str("key", "value").Msg("hello")
	closer()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Errorf("log file missing message, got: %s", data)
	}
	if !strings.Contains(string(data), `"key":"value"`) {
		t.Errorf("log file missing field, got: %s", data)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	logger, closer, err := New("warn", logFile)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info().Msg("filtered")
	logger.Warn().Msg("kept")
	closer()

	data, _ := os.ReadFile(logFile)
	if strings.Contains(string(data), "filtered") {
		t.Error("info message should have been filtered at warn level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("warn message missing")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("shouting", "")
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
}
