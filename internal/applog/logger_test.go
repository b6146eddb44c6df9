package applog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
		wantErr  bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"WARN", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, closeFn, err := New(Options{Level: tt.level, Quiet: true})
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) expected an error", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.level, err)
			}
			defer closeFn()
			if logger.GetLevel() != tt.expected {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tt.expected)
			}
		})
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bomber.log")

	logger, closeFn, err := New(Options{File: path, Prefix: "bomber"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("round over", "round", 2, "winner", "P1")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"bomber", "round over", "round=2", "winner=P1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
