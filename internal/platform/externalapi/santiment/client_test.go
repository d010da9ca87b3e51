package santiment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"market_snapshot/internal/feature/market/domain"
	"market_snapshot/internal/platform/externalapi/santiment/dto"
)

var (
	testFrom = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	testTo   = time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
)

func newTestMarket(t *testing.T, handler http.HandlerFunc) *SantimentMarket {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := Config{
		APIKey:   "test-key",
		Endpoint: server.URL,
		Timeout:  5 * time.Second,
	}
	return NewSantimentMarket(cfg, server.Client())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

const okBody = `{
	"data": {
		"price": {"timeseriesData": [
			{"datetime": "2024-03-01T00:00:00Z", "value": 61000.5},
			{"datetime": "2024-03-02T00:00:00Z", "value": 62000.25}
		]},
		"marketcap": {"timeseriesData": [
			{"datetime": "2024-03-01T00:00:00Z", "value": 1200000000000}
		]},
		"volume": {"timeseriesData": [
			{"datetime": "2024-03-01T00:00:00Z", "value": 35000000000},
			{"datetime": "2024-03-02T00:00:00Z", "value": 0}
		]}
	}
}`

func TestNewSantimentMarket(t *testing.T) {
	t.Parallel()

	cfg := Config{APIKey: "test-key", Endpoint: "https://api.test.com/graphql", Timeout: 10 * time.Second}
	market := NewSantimentMarket(cfg, &http.Client{})

	if market == nil {
		t.Fatal("expected non-nil market")
	}
	if market.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, market.cfg.APIKey)
	}
}

func TestSantimentMarket_GetTimeSeries_Success(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		// Verify request shape
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Apikey test-key" {
			t.Errorf("expected Apikey auth header, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
			t.Errorf("expected JSON content type, got %q", got)
		}

		raw, _ := io.ReadAll(r.Body)
		var req dto.GraphQLRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Errorf("invalid request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Variables.Slug != "bitcoin" {
			t.Errorf("expected slug bitcoin, got %s", req.Variables.Slug)
		}
		if req.Variables.From != "2024-03-01T00:00:00.000Z" {
			t.Errorf("unexpected from %q", req.Variables.From)
		}
		if req.Variables.To != "2024-03-07T15:30:00.000Z" {
			t.Errorf("unexpected to %q", req.Variables.To)
		}
		if !strings.Contains(req.Query, `interval: "1d"`) || !strings.Contains(req.Query, "$slug") {
			t.Errorf("query is not parameterized daily query: %s", req.Query)
		}
		if strings.Contains(req.Query, "bitcoin") {
			t.Error("slug must be passed as a variable, not interpolated")
		}

		writeJSON(w, http.StatusOK, okBody)
	})

	series, err := market.GetTimeSeries(context.Background(), "bitcoin", testFrom, testTo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Price) != 2 || len(series.MarketCap) != 1 || len(series.Volume) != 2 {
		t.Fatalf("unexpected lengths: price=%d marketcap=%d volume=%d",
			len(series.Price), len(series.MarketCap), len(series.Volume))
	}
	if series.Price[1].Value != 62000.25 {
		t.Errorf("expected price 62000.25, got %f", series.Price[1].Value)
	}
	if series.MarketCap[0].Datetime != "2024-03-01T00:00:00Z" {
		t.Errorf("unexpected datetime %q", series.MarketCap[0].Datetime)
	}
	if series.Volume[1].Value != 0 {
		t.Errorf("expected zero volume to survive, got %f", series.Volume[1].Value)
	}
}

func TestSantimentMarket_GetTimeSeries_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte("upstream says no"))
			})

			_, err := market.GetTimeSeries(context.Background(), "bitcoin", testFrom, testTo)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrUpstreamStatus) {
				t.Errorf("expected ErrUpstreamStatus, got %v", err)
			}
			if !strings.Contains(err.Error(), strconv.Itoa(tt.statusCode)) {
				t.Errorf("expected status %d in error, got %v", tt.statusCode, err)
			}
			if !strings.Contains(err.Error(), "upstream says no") {
				t.Errorf("expected upstream body in error, got %v", err)
			}
		})
	}
}

func TestSantimentMarket_GetTimeSeries_StatusInMessage(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"bad key"}`)
	})

	_, err := market.GetTimeSeries(context.Background(), "bitcoin", testFrom, testTo)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	want := `santiment api error 401: {"error":"bad key"}`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestSantimentMarket_GetTimeSeries_GraphQLErrors(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": null, "errors": [{"message": "Project with slug nope not found"}, {"message": "second"}]}`)
	})

	_, err := market.GetTimeSeries(context.Background(), "nope", testFrom, testTo)
	if !errors.Is(err, domain.ErrUpstreamQuery) {
		t.Fatalf("expected ErrUpstreamQuery, got %v", err)
	}
	if !strings.Contains(err.Error(), "Project with slug nope not found; second") {
		t.Errorf("expected joined GraphQL messages, got %v", err)
	}
}

func TestSantimentMarket_GetTimeSeries_MalformedPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		errField string
	}{
		{"invalid json", `{invalid json`, "decode"},
		{"missing data", `{}`, "missing data"},
		{
			"missing price",
			`{"data": {"marketcap": {"timeseriesData": []}, "volume": {"timeseriesData": []}}}`,
			"missing price.timeseriesData",
		},
		{
			"null marketcap series",
			`{"data": {"price": {"timeseriesData": []}, "marketcap": {"timeseriesData": null}, "volume": {"timeseriesData": []}}}`,
			"missing marketcap.timeseriesData",
		},
		{
			"point without datetime",
			`{"data": {"price": {"timeseriesData": []}, "marketcap": {"timeseriesData": []}, "volume": {"timeseriesData": [{"value": 1}]}}}`,
			"volume[0] has no datetime",
		},
		{
			"point without value",
			`{"data": {"price": {"timeseriesData": [{"datetime": "2024-03-01T00:00:00Z", "value": null}]}, "marketcap": {"timeseriesData": []}, "volume": {"timeseriesData": []}}}`,
			"price[0] has no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.response)
			})

			_, err := market.GetTimeSeries(context.Background(), "bitcoin", testFrom, testTo)
			if !errors.Is(err, domain.ErrMalformedPayload) {
				t.Fatalf("expected ErrMalformedPayload, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.errField) {
				t.Errorf("expected error containing %q, got %v", tt.errField, err)
			}
		})
	}
}

func TestSantimentMarket_GetTimeSeries_EmptySeries(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": {"price": {"timeseriesData": []}, "marketcap": {"timeseriesData": []}, "volume": {"timeseriesData": []}}}`)
	})

	series, err := market.GetTimeSeries(context.Background(), "bitcoin", testFrom, testTo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Price)+len(series.MarketCap)+len(series.Volume) != 0 {
		t.Errorf("expected empty series, got %+v", series)
	}
}

func TestSantimentMarket_GetTimeSeries_InputValidation(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	tests := []struct {
		name    string
		apiKey  string
		slug    string
		from    time.Time
		to      time.Time
		wantErr error
	}{
		{"missing api key", "", "bitcoin", testFrom, testTo, domain.ErrMissingAPIKey},
		{"empty slug", "k", "  ", testFrom, testTo, domain.ErrUnknownAsset},
		{"from equals to", "k", "bitcoin", testTo, testTo, domain.ErrInvalidRange},
		{"from after to", "k", "bitcoin", testTo, testFrom, domain.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market := NewSantimentMarket(Config{APIKey: tt.apiKey, Endpoint: server.URL}, server.Client())
			_, err := market.GetTimeSeries(context.Background(), tt.slug, tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if called {
		t.Error("no request should reach the upstream on invalid input")
	}
}

func TestSantimentMarket_GetTimeSeries_ContextCancellation(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := market.GetTimeSeries(ctx, "bitcoin", testFrom, testTo)
	if err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SAN_API_KEY", "")
	t.Setenv("NEXT_PUBLIC_SAN_API_KEY", "legacy-key")
	t.Setenv("SAN_GRAPHQL_ENDPOINT", "")
	t.Setenv("SAN_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()
	if cfg.APIKey != "legacy-key" {
		t.Errorf("expected legacy key fallback, got %q", cfg.APIKey)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}

	t.Setenv("SAN_API_KEY", "primary-key")
	t.Setenv("SAN_TIMEOUT_SECONDS", "7")
	cfg = LoadConfig()
	if cfg.APIKey != "primary-key" {
		t.Errorf("expected primary key, got %q", cfg.APIKey)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("expected timeout 7s, got %v", cfg.Timeout)
	}
	if !cfg.HasAPIKey() {
		t.Error("expected HasAPIKey to be true")
	}
}
