package main

import (
	"log"
	"log/slog"

	"market_snapshot/internal/app/config"
	"market_snapshot/internal/app/di"
	"market_snapshot/internal/app/router"
)

func main() {
	cfg := config.Load()

	// 設定チェック。APIキー未設定でも起動はし、/api/market が 500 を返す
	if err := cfg.Validate(); err != nil {
		slog.Warn("configuration incomplete", "error", err)
	}
	slog.Info("tracking assets", "count", len(cfg.Assets), "lookback_days", cfg.LookbackDays, "window", cfg.WindowSize)

	// Handler
	marketH := di.NewMarketHandler(cfg)

	// ルータ生成
	r := router.NewRouter(marketH, cfg.Santiment.HasAPIKey(), cfg.CORSAllowOrigin)

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
