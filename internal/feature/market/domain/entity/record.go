package entity

// Record is one date's merged price / market cap / volume for an asset.
// A nil field means the upstream returned no value for that date,
// which is distinct from a zero value.
type Record struct {
	Datetime  string
	Price     *float64
	MarketCap *float64
	Volume    *float64
}

// Snapshot maps an asset slug to its trailing window of records.
type Snapshot map[string][]Record
