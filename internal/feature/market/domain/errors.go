// Package domain defines domain-level errors for the market feature.
package domain

import "errors"

// Domain errors for market snapshot operations.
// Every one of them is fatal to the request that produced it.
var (
	// ErrMissingAPIKey indicates that no upstream API key was configured.
	// It is returned before any outbound call is attempted.
	ErrMissingAPIKey = errors.New("missing SAN_API_KEY in environment")

	// ErrUpstreamStatus indicates that the upstream API answered with a non-success HTTP status.
	ErrUpstreamStatus = errors.New("santiment api error")

	// ErrUpstreamQuery indicates that the upstream API reported GraphQL errors.
	ErrUpstreamQuery = errors.New("santiment query error")

	// ErrMalformedPayload indicates that the upstream payload was missing expected fields.
	ErrMalformedPayload = errors.New("malformed santiment payload")

	// ErrInvalidRange indicates a date range whose start is not before its end.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrUnknownAsset indicates an empty or unconfigured asset identifier.
	ErrUnknownAsset = errors.New("unknown asset")
)
