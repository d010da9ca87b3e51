// Package cli implements the one-shot snapshot command.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"market_snapshot/internal/app/config"
	"market_snapshot/internal/app/di"
	"market_snapshot/internal/feature/market/domain/entity"
)

// SnapshotSource is what the command needs from the market usecase.
type SnapshotSource interface {
	Assets() []entity.Asset
	GetSnapshot(ctx context.Context) (entity.Snapshot, error)
}

// sourceFactory builds a SnapshotSource from the final configuration.
type sourceFactory func(cfg *config.Config) SnapshotSource

// NewRootCmd creates the root command wired to the real Santiment client.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Load, func(cfg *config.Config) SnapshotSource {
		return di.NewSnapshotUsecase(cfg)
	})
}

func newRootCmd(load func() *config.Config, build sourceFactory) *cobra.Command {
	var (
		assets   string
		window   int
		lookback int
		format   string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the latest daily price, market cap and volume per asset",
		Long: `snapshot fetches daily price, market cap and volume for the configured
crypto assets from Santiment, aligns them by date and prints the trailing window.
Example: snapshot --assets bitcoin,ethereum --format table`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			if cmd.Flags().Changed("assets") {
				cfg.Assets = config.ParseAssets(assets)
			}
			if cmd.Flags().Changed("window") {
				cfg.WindowSize = window
			}
			if cmd.Flags().Changed("lookback") {
				cfg.LookbackDays = lookback
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			src := build(cfg)
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			snap, err := src.GetSnapshot(ctx)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, src.Assets(), snap)
		},
	}

	cmd.Flags().StringVar(&assets, "assets", "", "comma separated asset slugs (default from MARKET_ASSETS)")
	cmd.Flags().IntVar(&window, "window", 0, "number of trailing daily rows per asset")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "days of history to request")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or table")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline for the snapshot")

	return cmd
}

func render(w io.Writer, format string, assets []entity.Asset, snap entity.Snapshot) error {
	switch strings.ToLower(format) {
	case "json":
		return renderJSON(w, snap)
	case "table":
		return renderTable(w, assets, snap)
	default:
		return fmt.Errorf("unknown format %q (want json or table)", format)
	}
}
