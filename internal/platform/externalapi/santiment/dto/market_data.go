// Package dto defines data transfer objects for the Santiment GraphQL API.
package dto

// GraphQLRequest is the POST body of a GraphQL call.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables MarketDataVars `json:"variables"`
}

// MarketDataVars are the variables of the market data query.
// From and To are ISO-8601 instants.
type MarketDataVars struct {
	Slug string `json:"slug"`
	From string `json:"from"`
	To   string `json:"to"`
}

// MarketDataResponse represents the JSON response of the market data query.
type MarketDataResponse struct {
	Data   *MarketData    `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// MarketData holds the three aliased getMetric selections.
type MarketData struct {
	Price     *Metric `json:"price"`
	MarketCap *Metric `json:"marketcap"`
	Volume    *Metric `json:"volume"`
}

// Metric wraps one metric's timeseries. A nil slice means the field was absent or null.
type Metric struct {
	TimeseriesData []Point `json:"timeseriesData"`
}

// Point is one timeseries observation.
type Point struct {
	Datetime string   `json:"datetime"`
	Value    *float64 `json:"value"`
}

// GraphQLError is one entry of the GraphQL "errors" array.
type GraphQLError struct {
	Message string `json:"message"`
}
