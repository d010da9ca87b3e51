// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_snapshot/internal/feature/market/domain/entity"
	"market_snapshot/internal/feature/market/transport/http/dto"
)

// MarketUsecase はマーケットスナップショット取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	GetSnapshot(ctx context.Context) (entity.Snapshot, error)
}

// MarketHandler はマーケットデータのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetMarket は設定された全銘柄の直近の価格・時価総額・出来高をJSONで返します。
// いずれかの取得に失敗した場合は 500 と {"error": "..."} を返します。
//
// エンドポイント例:
// GET /api/market
func (h *MarketHandler) GetMarket(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	snap, err := h.uc.GetSnapshot(c.Request.Context())
	if err != nil {
		slog.Error("failed to build market snapshot", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ToMarketResponse(snap))
}

// ToMarketResponse はスナップショットをレスポンスDTOに変換します。
// レコードが無い銘柄も空配列として出力します。
func ToMarketResponse(snap entity.Snapshot) dto.MarketResponse {
	out := make(dto.MarketResponse, len(snap))
	for slug, records := range snap {
		rows := make([]dto.RecordResponse, 0, len(records))
		for _, r := range records {
			rows = append(rows, dto.RecordResponse{
				Datetime:  r.Datetime,
				Price:     r.Price,
				MarketCap: r.MarketCap,
				Volume:    r.Volume,
			})
		}
		out[slug] = rows
	}
	return out
}
