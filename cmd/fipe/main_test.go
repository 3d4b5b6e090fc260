package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"tabela-fipe-cli/internal/fipetest"
)

func Test_setupLogger(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		below   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"verbose", slog.LevelWarn, slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := setupLogger(tt.level)
			ctx := context.Background()
			if !logger.Enabled(ctx, tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if logger.Enabled(ctx, tt.below) {
				t.Errorf("level %v should be disabled", tt.below)
			}
		})
	}
}

func TestRootCmd(t *testing.T) {
	srv := fipetest.NewServer(fipetest.SampleCatalog())
	defer srv.Close()

	t.Setenv("FIPE_BASE_URL", srv.BaseURL)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("1\n25\ngol\n5968\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if n := strings.Count(out.String(), "Código FIPE: 005340-6"); n != 2 {
		t.Errorf("printed %d vehicles, want 2\n%s", n, out.String())
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"carros"})
	defer rootCmd.SetArgs([]string{})

	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Execute() with positional args should fail")
	}
}
