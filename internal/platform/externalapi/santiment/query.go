package santiment

// marketDataQuery fetches daily price, market cap and volume for one slug.
// Slug and range are passed as variables so the document itself never changes.
const marketDataQuery = `
query MarketData($slug: String!, $from: DateTime!, $to: DateTime!) {
  price: getMetric(metric: "price_usd") {
    timeseriesData(selector: { slug: $slug }, from: $from, to: $to, interval: "1d") {
      datetime
      value
    }
  }
  marketcap: getMetric(metric: "marketcap_usd") {
    timeseriesData(selector: { slug: $slug }, from: $from, to: $to, interval: "1d") {
      datetime
      value
    }
  }
  volume: getMetric(metric: "volume_usd") {
    timeseriesData(selector: { slug: $slug }, from: $from, to: $to, interval: "1d") {
      datetime
      value
    }
  }
}
`

// isoMillis is the instant layout sent as $from / $to.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"
