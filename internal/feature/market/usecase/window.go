package usecase

import "market_snapshot/internal/feature/market/domain/entity"

// DefaultWindowSize は1銘柄あたりに返す直近レコード数です。
const DefaultWindowSize = 5

// TrailingWindow は昇順に並んだレコード列の末尾n件を返します。
// n件に満たない場合は全件をそのまま返し、ダミーで埋めることはしません。
func TrailingWindow(records []entity.Record, n int) []entity.Record {
	if n <= 0 {
		return []entity.Record{}
	}
	if records == nil {
		return []entity.Record{}
	}
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}
