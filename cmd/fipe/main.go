package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tabela-fipe-cli/internal/client"
	"tabela-fipe-cli/internal/config"
	"tabela-fipe-cli/internal/parser"
	"tabela-fipe-cli/internal/prompt"
	"tabela-fipe-cli/internal/service"
)

var rootCmd = &cobra.Command{
	Use:           "fipe",
	Short:         "Consulta interativa de preços na Tabela FIPE",
	Long:          "Percorre categoria, marca, modelo e ano e imprime os preços da Tabela FIPE para cada ano do modelo escolhido.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd)
	},
}

func run(ctx context.Context, cmd *cobra.Command) error {
	// Carregar config
	cfg := config.Load()

	// Logger estruturado
	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	logger.Info("iniciando consulta FIPE", "base_url", cfg.BaseURL)

	fipeClient := client.NewFipeClient(nil, logger)
	consultaSvc := service.NewConsultaService(fipeClient, parser.NewDecoder(), cfg.BaseURL, logger)

	return prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), consultaSvc).Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("consulta cancelada")
		} else {
			slog.Error("consulta falhou", "error", err)
		}
		stop()
		os.Exit(1)
	}
}

// setupLogger creates a structured logger on stderr with the specified level
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
