// Package di provides dependency injection factories for creating application components.
package di

import (
	"market_snapshot/internal/app/config"
	"market_snapshot/internal/feature/market/transport/handler"
	"market_snapshot/internal/feature/market/usecase"
	"market_snapshot/internal/platform/externalapi/santiment"
	infrahttp "market_snapshot/internal/platform/http"
)

// NewMarket creates a fully configured SantimentMarket with HTTP client.
func NewMarket(cfg santiment.Config) *santiment.SantimentMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return santiment.NewSantimentMarket(cfg, httpClient)
}

// NewSnapshotUsecase wires the upstream client into the snapshot usecase.
func NewSnapshotUsecase(cfg *config.Config) *usecase.SnapshotUsecase {
	return usecase.NewSnapshotUsecase(
		NewMarket(cfg.Santiment),
		cfg.Assets,
		cfg.Santiment.HasAPIKey(),
		usecase.WithLookbackDays(cfg.LookbackDays),
		usecase.WithWindowSize(cfg.WindowSize),
	)
}

// NewMarketHandler creates the HTTP handler for the market endpoint.
func NewMarketHandler(cfg *config.Config) *handler.MarketHandler {
	return handler.NewMarketHandler(NewSnapshotUsecase(cfg))
}
