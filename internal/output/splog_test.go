package output

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSimpleHandlerDebugGating(t *testing.T) {
	h := &simpleHandler{writer: os.Stdout, debugMode: false}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled by default")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should always be enabled")
	}

	h.debugMode = true
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be enabled in debug mode")
	}
}

func TestSplogWritesToLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "gitbox.log")

	splog, err := NewSplogWithLogFile(logPath)
	if err != nil {
		t.Fatalf("NewSplogWithLogFile: %v", err)
	}

	splog.Info("synced %s", ".vimrc")
	splog.Warn("pull failed")
	if err := splog.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(content), "synced .vimrc") {
		t.Errorf("log file missing info message: %s", content)
	}
	if !strings.Contains(string(content), "pull failed") {
		t.Errorf("log file missing warn message: %s", content)
	}
	if !strings.Contains(string(content), "level=WARN") {
		t.Errorf("file handler should record levels: %s", content)
	}
}

func TestLumberjackConfigFromEnv(t *testing.T) {
	t.Setenv("GITBOX_LOG_MAX_SIZE", "5")
	t.Setenv("GITBOX_LOG_MAX_BACKUPS", "7")
	t.Setenv("GITBOX_LOG_MAX_AGE", "14")

	logger := createLumberjackLogger("/tmp/gitbox.log")
	if logger.MaxSize != 5 {
		t.Errorf("MaxSize = %d, want 5", logger.MaxSize)
	}
	if logger.MaxBackups != 7 {
		t.Errorf("MaxBackups = %d, want 7", logger.MaxBackups)
	}
	if logger.MaxAge != 14 {
		t.Errorf("MaxAge = %d, want 14", logger.MaxAge)
	}
}

func TestLumberjackConfigIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("GITBOX_LOG_MAX_SIZE", "not-a-number")

	logger := createLumberjackLogger("/tmp/gitbox.log")
	if logger.MaxSize != 1 {
		t.Errorf("MaxSize = %d, want default 1", logger.MaxSize)
	}
}
