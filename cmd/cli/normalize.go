package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iho/bankledger/internal/adapter/idgen"
	redisRepo "github.com/iho/bankledger/internal/adapter/repository/redis"
	"github.com/iho/bankledger/internal/adapter/source"
	"github.com/iho/bankledger/internal/adapter/source/spreadsheet"
	"github.com/iho/bankledger/internal/infrastructure/metrics"
	"github.com/iho/bankledger/internal/infrastructure/redis"
	"github.com/iho/bankledger/internal/usecase"
)

var errVerdictsFailed = errors.New("some institutions failed validation")

type normalizeFlags struct {
	out    string
	format string
	style  string
	strict bool
}

func newNormalizeCmd() *cobra.Command {
	var flags normalizeFlags

	cmd := &cobra.Command{
		Use:   "normalize ROOT",
		Short: "Normalize every institution directory under ROOT into one ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write the ledger and verdicts to this xlsx file")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Report format: text or markdown")
	cmd.Flags().StringVar(&flags.style, "style", "auto", "Markdown style: auto, dark, light, notty or ascii")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit with an error when any institution fails validation")
	return cmd
}

func runNormalize(ctx context.Context, stdout, stderr io.Writer, root string, flags normalizeFlags) error {
	if flags.format != "text" && flags.format != "markdown" {
		return fmt.Errorf("unknown report format %q", flags.format)
	}
	if info, err := os.Stat(root); err != nil {
		return fmt.Errorf("failed to open root: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", root)
	}

	e, err := loadEnv(stderr)
	if err != nil {
		return err
	}

	reader := spreadsheet.NewReader()
	reader.Charset = e.cfg.XLSCharset

	m := metrics.New()
	options := []usecase.NormalizeOption{
		usecase.WithRetrier(source.NewRetrier(e.cfg.ReadRetries, e.log)),
		usecase.WithMetrics(m),
	}

	if e.cfg.CacheEnabled() {
		client, err := redis.NewClient(ctx, e.cfg.RedisURL, e.cfg.RedisTimeout)
		if err != nil {
			e.log.Warn().Err(err).Msg("parse cache unavailable, continuing without it")
		} else {
			defer client.Close()
			options = append(options, usecase.WithParseCache(redisRepo.NewParseCache(client, e.cfg.CacheTTL)))
			e.log.Info().Msg("parse cache enabled")
		}
	}

	uc := usecase.NewNormalizeUseCase(
		e.profiles,
		reader,
		usecase.NewAdapterRegistry(),
		idgen.NewULIDGenerator(),
		e.log,
		optionsFromConfig(e.cfg),
		options...,
	)

	res, err := uc.Run(ctx, os.DirFS(root))
	if err != nil {
		return err
	}

	switch flags.format {
	case "markdown":
		rendered, err := renderMarkdown(markdownReport(res), flags.style)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, rendered)
	default:
		writeTextReport(stdout, res)
	}

	if flags.out != "" {
		if err := writeLedgerFile(flags.out, res); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "ledger written to %s\n", flags.out)
	}

	if e.cfg.MetricsFile != "" {
		if err := m.WriteFile(e.cfg.MetricsFile); err != nil {
			e.log.Error().Err(err).Str("file", e.cfg.MetricsFile).Msg("failed to write metrics")
		}
	}

	if flags.strict && failedCount(res) > 0 {
		return errVerdictsFailed
	}
	return nil
}

func writeLedgerFile(path string, res *usecase.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}
	if err := spreadsheet.WriteLedger(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func failedCount(res *usecase.Result) int {
	n := 0
	for _, v := range res.Verdicts() {
		if v.HasMistakes {
			n++
		}
	}
	return n
}
