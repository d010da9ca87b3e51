// Package dto defines data transfer objects for the market HTTP API.
package dto

// RecordResponse は1日分の統合レコードです。
// 欠損値はnullとして出力し、0と区別できるようにします。
type RecordResponse struct {
	Datetime  string   `json:"datetime"`
	Price     *float64 `json:"price"`
	MarketCap *float64 `json:"marketcap"`
	Volume    *float64 `json:"volume"`
}

// MarketResponse は銘柄スラッグから直近レコード列への対応です。
type MarketResponse map[string][]RecordResponse

// ErrorResponse はエラー時のレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
