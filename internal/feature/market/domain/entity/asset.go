// Package entity defines the domain models for the market feature.
package entity

import "strings"

// Asset is one tracked crypto asset. Slug is the upstream identifier
// (e.g. "bitcoin"); Label is the human-readable name shown by clients.
type Asset struct {
	Slug  string
	Label string
}

// knownLabels maps well-known slugs to display names.
var knownLabels = map[string]string{
	"bitcoin":  "Bitcoin",
	"ethereum": "Ethereum",
	"solana":   "Solana",
}

// NewAsset builds an Asset from a slug, resolving its display label.
// Unknown slugs fall back to the slug with its first letter upper-cased.
func NewAsset(slug string) Asset {
	slug = strings.TrimSpace(slug)
	if label, ok := knownLabels[slug]; ok {
		return Asset{Slug: slug, Label: label}
	}
	label := slug
	if slug != "" {
		label = strings.ToUpper(slug[:1]) + slug[1:]
	}
	return Asset{Slug: slug, Label: label}
}

// DefaultAssets is the asset set tracked when nothing else is configured.
func DefaultAssets() []Asset {
	return []Asset{NewAsset("bitcoin"), NewAsset("ethereum"), NewAsset("solana")}
}
