package entity

// Metric names a timeseries as the upstream analytics API knows it.
type Metric string

const (
	MetricPrice     Metric = "price_usd"
	MetricMarketCap Metric = "marketcap_usd"
	MetricVolume    Metric = "volume_usd"
)

// MetricPoint is one (timestamp, value) observation of a single metric.
// Datetime is kept in the upstream ISO-8601 form so it can key the merge.
type MetricPoint struct {
	Datetime string
	Value    float64
}

// Series holds the three raw daily timeseries fetched for one asset.
// The slices are independently ordered and need not share timestamps.
type Series struct {
	Price     []MetricPoint
	MarketCap []MetricPoint
	Volume    []MetricPoint
}
