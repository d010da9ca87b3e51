package usecase

import (
	"slices"
	"strings"
	"time"

	"market_snapshot/internal/feature/market/domain/entity"
)

// MergeSeries は3つの時系列を日時をキーに1つのレコード列へ統合します。
// どれか1つの指標にしか存在しない日時もレコードとして残し、欠けている指標はnilのままにします。
// 結果は日時の昇順で、同じ日時のレコードは1件だけです。
func MergeSeries(s entity.Series) []entity.Record {
	byDate := make(map[string]*entity.Record)

	upsert := func(points []entity.MetricPoint, set func(r *entity.Record, v *float64)) {
		for _, p := range points {
			r, ok := byDate[p.Datetime]
			if !ok {
				r = &entity.Record{Datetime: p.Datetime}
				byDate[p.Datetime] = r
			}
			v := p.Value
			set(r, &v)
		}
	}

	upsert(s.Price, func(r *entity.Record, v *float64) { r.Price = v })
	upsert(s.MarketCap, func(r *entity.Record, v *float64) { r.MarketCap = v })
	upsert(s.Volume, func(r *entity.Record, v *float64) { r.Volume = v })

	out := make([]entity.Record, 0, len(byDate))
	for _, r := range byDate {
		out = append(out, *r)
	}
	sortRecords(out)
	return out
}

// sortRecords は日時の昇順に並べ替えます。
// 全ての日時がRFC3339として解釈できる場合は時刻で比較し、そうでなければ文字列で比較します。
func sortRecords(records []entity.Record) {
	instants := make(map[string]time.Time, len(records))
	parsed := true
	for _, r := range records {
		t, err := time.Parse(time.RFC3339Nano, r.Datetime)
		if err != nil {
			parsed = false
			break
		}
		instants[r.Datetime] = t
	}

	slices.SortFunc(records, func(a, b entity.Record) int {
		if parsed {
			if c := instants[a.Datetime].Compare(instants[b.Datetime]); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Datetime, b.Datetime)
	})
}
