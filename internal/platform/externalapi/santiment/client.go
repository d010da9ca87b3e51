package santiment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"market_snapshot/internal/feature/market/domain"
	"market_snapshot/internal/feature/market/domain/entity"
	"market_snapshot/internal/feature/market/usecase"
	"market_snapshot/internal/platform/externalapi/santiment/dto"
)

// SantimentMarket はSantiment GraphQL APIから日次の時系列を取得するMarketRepository実装です。
type SantimentMarket struct {
	cfg    Config
	client *resty.Client
}

// SantimentMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*SantimentMarket)(nil)

// NewSantimentMarket は指定された設定とHTTPクライアントでSantimentMarketの新しいインスタンスを生成します。
// リトライは行いません。
func NewSantimentMarket(cfg Config, httpClient *http.Client) *SantimentMarket {
	rc := resty.NewWithClient(httpClient).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &SantimentMarket{cfg: cfg, client: rc}
}

// GetTimeSeries は1銘柄分の価格・時価総額・出来高の日次時系列を1回のリクエストで取得します。
// 失敗時は部分的な結果を返しません。
func (s *SantimentMarket) GetTimeSeries(ctx context.Context, slug string, from, to time.Time) (entity.Series, error) {
	if !s.cfg.HasAPIKey() {
		return entity.Series{}, domain.ErrMissingAPIKey
	}
	if strings.TrimSpace(slug) == "" {
		return entity.Series{}, fmt.Errorf("%w: empty slug", domain.ErrUnknownAsset)
	}
	if !from.Before(to) {
		return entity.Series{}, fmt.Errorf("%w: from %s is not before to %s", domain.ErrInvalidRange, from, to)
	}

	body := dto.GraphQLRequest{
		Query: marketDataQuery,
		Variables: dto.MarketDataVars{
			Slug: slug,
			From: from.UTC().Format(isoMillis),
			To:   to.UTC().Format(isoMillis),
		},
	}

	// リクエストを実行
	res, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Apikey "+s.cfg.APIKey).
		SetBody(body).
		Post(s.cfg.Endpoint)
	if err != nil {
		return entity.Series{}, fmt.Errorf("santiment request for %s: %w", slug, err)
	}

	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return entity.Series{}, fmt.Errorf("%w %d: %s", domain.ErrUpstreamStatus, res.StatusCode(), strings.TrimSpace(res.String()))
	}

	// JSONレスポンスをDTOにデコード
	var payload dto.MarketDataResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return entity.Series{}, fmt.Errorf("%w: decode %s: %v", domain.ErrMalformedPayload, slug, err)
	}
	if len(payload.Errors) > 0 {
		msgs := make([]string, 0, len(payload.Errors))
		for _, e := range payload.Errors {
			msgs = append(msgs, e.Message)
		}
		return entity.Series{}, fmt.Errorf("%w: %s", domain.ErrUpstreamQuery, strings.Join(msgs, "; "))
	}
	if payload.Data == nil {
		return entity.Series{}, fmt.Errorf("%w: missing data for %s", domain.ErrMalformedPayload, slug)
	}

	price, err := toPoints("price", payload.Data.Price)
	if err != nil {
		return entity.Series{}, err
	}
	mcap, err := toPoints("marketcap", payload.Data.MarketCap)
	if err != nil {
		return entity.Series{}, err
	}
	vol, err := toPoints("volume", payload.Data.Volume)
	if err != nil {
		return entity.Series{}, err
	}

	return entity.Series{Price: price, MarketCap: mcap, Volume: vol}, nil
}

// toPoints はDTOの時系列をドメインの MetricPoint に変換します。
// フィールドの欠落やnull値はデータ不正として扱います。
func toPoints(field string, m *dto.Metric) ([]entity.MetricPoint, error) {
	if m == nil || m.TimeseriesData == nil {
		return nil, fmt.Errorf("%w: missing %s.timeseriesData", domain.ErrMalformedPayload, field)
	}
	out := make([]entity.MetricPoint, 0, len(m.TimeseriesData))
	for i, p := range m.TimeseriesData {
		if p.Datetime == "" {
			return nil, fmt.Errorf("%w: %s[%d] has no datetime", domain.ErrMalformedPayload, field, i)
		}
		if p.Value == nil {
			return nil, fmt.Errorf("%w: %s[%d] has no value", domain.ErrMalformedPayload, field, i)
		}
		out = append(out, entity.MetricPoint{Datetime: p.Datetime, Value: *p.Value})
	}
	return out, nil
}
