// Package router builds the gin engine and registers every route.
package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	markethandler "market_snapshot/internal/feature/market/transport/handler"
	platformhandler "market_snapshot/internal/platform/http/handler"
)

// NewRouter は全ルートを登録したgin.Engineを返します。
// allowOrigin はカンマ区切りのオリジン一覧で、"*" の場合は全オリジンを許可します。
func NewRouter(market *markethandler.MarketHandler, apiKeySet bool, allowOrigin string) *gin.Engine {
	r := gin.Default()

	// ダッシュボード（ブラウザ）からの読み取り専用アクセスを許可
	r.Use(cors.New(corsConfig(allowOrigin)))

	// 導通確認用
	health := platformhandler.NewHealth(apiKeySet)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	api := r.Group("/api")
	{
		api.GET("/market", market.GetMarket)
	}

	return r
}

func corsConfig(allowOrigin string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Accept", "Content-Type"},
	}
	var origins []string
	for _, o := range strings.Split(allowOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
