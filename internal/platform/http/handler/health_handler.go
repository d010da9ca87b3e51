// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse は /healthz のレスポンスです。
type HealthResponse struct {
	Status string `json:"status"`
	// APIKey はSantiment APIキーの設定状況です（"configured" または "missing"）。
	APIKey string `json:"api_key"`
}

// NewHealth は /healthz エンドポイントのハンドラーを返します。
// プロセスが生きている限り常に成功を返し、APIキー未設定は本文で知らせるだけです。
func NewHealth(apiKeySet bool) gin.HandlerFunc {
	body := HealthResponse{Status: "ok", APIKey: "missing"}
	if apiKeySet {
		body.APIKey = "configured"
	}

	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, body)
		}
	}
}
