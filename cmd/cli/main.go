package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/bankledger/internal/adapter/repository/profile"
	"github.com/iho/bankledger/internal/infrastructure/config"
	"github.com/iho/bankledger/internal/infrastructure/logger"
	"github.com/iho/bankledger/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bankledger",
		Short: "Bank statement normalization",
		Long: `bankledger reads the statement exports of many banks, one directory per
institution, and normalizes them into a single ledger with a validation
verdict per institution.

Settings come from LEDGER_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newProfilesCmd())
	return rootCmd
}

// env is what every command needs from the environment.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	profiles *profile.Repository
}

func loadEnv(stderr io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
	})

	profiles := profile.NewBuiltinRepository()
	if cfg.ProfilesFile != "" {
		if err := profiles.LoadFile(cfg.ProfilesFile); err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
		log.Debug().Str("file", cfg.ProfilesFile).Msg("profile overrides loaded")
	}

	return &env{cfg: cfg, log: log, profiles: profiles}, nil
}

func optionsFromConfig(cfg *config.Config) usecase.Options {
	return usecase.Options{
		HeaderProbes:       cfg.HeaderProbes,
		OutflowTokens:      cfg.OutflowTokens,
		NoTransactionWords: cfg.NoTransactionWords,
		HolderBoilerplate:  cfg.HolderBoilerplate,
		IgnoreGlobs:        cfg.IgnoreGlobs,
		NoResultsMarker:    cfg.NoResultsMarker,
		Workers:            cfg.Workers,
	}
}
