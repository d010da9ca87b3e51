// Package usecase はマーケットスナップショット取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"market_snapshot/internal/feature/market/domain"
	"market_snapshot/internal/feature/market/domain/entity"
)

// DefaultLookbackDays は取得する日数です。取得後に DefaultWindowSize 件へ切り詰めるため、1日分の余裕を持たせています。
const DefaultLookbackDays = 6

// MarketRepository は外部分析APIから日次の時系列を取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetTimeSeries は指定銘柄の価格・時価総額・出来高の日次時系列を [from, to] の範囲で取得します。
	GetTimeSeries(ctx context.Context, slug string, from, to time.Time) (entity.Series, error)
}

// SnapshotUsecase は設定された全銘柄の時系列を取得・統合し、直近ウィンドウに切り詰めます。
type SnapshotUsecase struct {
	market       MarketRepository
	assets       []entity.Asset
	apiKeySet    bool
	lookbackDays int
	windowSize   int
	now          func() time.Time
}

// Option は SnapshotUsecase の設定を上書きします。
type Option func(*SnapshotUsecase)

// WithLookbackDays は取得期間の日数を設定します。0以下は無視されます。
func WithLookbackDays(days int) Option {
	return func(u *SnapshotUsecase) {
		if days > 0 {
			u.lookbackDays = days
		}
	}
}

// WithWindowSize は銘柄ごとに返すレコード数を設定します。0以下は無視されます。
func WithWindowSize(n int) Option {
	return func(u *SnapshotUsecase) {
		if n > 0 {
			u.windowSize = n
		}
	}
}

// WithClock は現在時刻の取得関数を差し替えます（テスト用）。
func WithClock(now func() time.Time) Option {
	return func(u *SnapshotUsecase) {
		if now != nil {
			u.now = now
		}
	}
}

// NewSnapshotUsecase は SnapshotUsecase の新しいインスタンスを生成します。
// apiKeySet が false の場合、GetSnapshot は外部APIを呼ばずに domain.ErrMissingAPIKey を返します。
func NewSnapshotUsecase(market MarketRepository, assets []entity.Asset, apiKeySet bool, opts ...Option) *SnapshotUsecase {
	u := &SnapshotUsecase{
		market:       market,
		assets:       assets,
		apiKeySet:    apiKeySet,
		lookbackDays: DefaultLookbackDays,
		windowSize:   DefaultWindowSize,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Assets は設定された銘柄を設定順で返します。
func (u *SnapshotUsecase) Assets() []entity.Asset {
	return u.assets
}

// DateRange は取得期間を返します。
// from は lookbackDays 日前のUTC 0時、to は現在時刻です。
func (u *SnapshotUsecase) DateRange() (time.Time, time.Time) {
	to := u.now().UTC()
	midnight := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -u.lookbackDays), to
}

// GetSnapshot は全銘柄の時系列を並行して取得し、銘柄ごとに統合・切り詰めたスナップショットを返します。
// いずれか1銘柄でも取得に失敗した場合は、部分的な結果を返さずリクエスト全体を失敗させます。
func (u *SnapshotUsecase) GetSnapshot(ctx context.Context) (entity.Snapshot, error) {
	if !u.apiKeySet {
		return nil, domain.ErrMissingAPIKey
	}
	for _, a := range u.assets {
		if a.Slug == "" {
			return nil, fmt.Errorf("%w: empty slug", domain.ErrUnknownAsset)
		}
	}

	from, to := u.DateRange()
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from %s is not before to %s", domain.ErrInvalidRange, from, to)
	}

	results := make([][]entity.Record, len(u.assets))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range u.assets {
		g.Go(func() error {
			series, err := u.market.GetTimeSeries(gctx, a.Slug, from, to)
			if err != nil {
				slog.Error("failed to fetch timeseries", "slug", a.Slug, "error", err)
				return err
			}
			results[i] = TrailingWindow(MergeSeries(series), u.windowSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := make(entity.Snapshot, len(u.assets))
	for i, a := range u.assets {
		snapshot[a.Slug] = results[i]
	}
	return snapshot, nil
}
