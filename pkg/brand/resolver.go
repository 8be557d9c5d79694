/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package brand

import (
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/docsmith/pkg/config"
)

// Tier identifies which resolution tier produced a result.
type Tier int

const (
	// TierBrand is an exact hit in the brand-mapping table.
	TierBrand Tier = iota

	// TierCompound is an exact hit in the compound-word table.
	TierCompound

	// TierFallback is the default derivation from the raw identifier.
	// Falling back is a normal outcome, not an error.
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierBrand:
		return "brand"
	case TierCompound:
		return "compound"
	default:
		return "fallback"
	}
}

// maxSuggestionDistance bounds the edit distance for near-miss hints logged
// on fallback.
const maxSuggestionDistance = 2

// Resolution is the outcome of resolving a namespace identifier.
type Resolution struct {
	// BrandName is the display name used in rendered documents.
	BrandName string

	// Slug is the filesystem-safe artifact name.
	Slug string

	// Tier records which tier matched.
	Tier Tier
}

// Resolver maps raw namespace identifiers to display names and file slugs
// through a strict three-tier fallback: brand table, compound-word table,
// derived default. First match wins.
type Resolver struct {
	cfg    config.Run
	titler cases.Caser
}

// New creates a Resolver bound to the given run configuration.
func New(cfg config.Run) *Resolver {
	return &Resolver{
		cfg:    cfg,
		titler: cases.Title(language.English),
	}
}

// Resolve returns the brand name and file slug for a raw namespace
// identifier. It never fails: identifiers absent from both tables resolve
// through the fallback tier.
func (r *Resolver) Resolve(id string) Resolution {
	key := strings.ToLower(strings.TrimSpace(id))

	if entry, ok := r.cfg.Brand[key]; ok {
		return Resolution{BrandName: entry.BrandName, Slug: entry.Slug, Tier: TierBrand}
	}

	if hyphenated, ok := r.cfg.CompoundWords[key]; ok {
		return Resolution{
			BrandName: r.compoundDisplay(hyphenated),
			Slug:      strings.ToLower(hyphenated),
			Tier:      TierCompound,
		}
	}

	res := Resolution{
		BrandName: r.titler.String(key),
		Slug:      key,
		Tier:      TierFallback,
	}

	if hint := r.nearestBrandKey(key); hint != "" {
		slog.Info("namespace resolved via fallback",
			"namespace", id,
			"slug", res.Slug,
			"near_miss", hint,
		)
	} else {
		slog.Info("namespace resolved via fallback", "namespace", id, "slug", res.Slug)
	}
	return res
}

// compoundDisplay turns a hyphenated form into a readable label:
// "event-hub" -> "Event Hub".
func (r *Resolver) compoundDisplay(hyphenated string) string {
	parts := strings.Split(hyphenated, "-")
	for i, p := range parts {
		parts[i] = r.titler.String(p)
	}
	return strings.Join(parts, " ")
}

// nearestBrandKey returns a configured brand key within a small edit
// distance of the identifier, or "" when none qualifies. Used only to make
// fallback log lines actionable when a mapping entry is probably misspelled.
func (r *Resolver) nearestBrandKey(key string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for candidate := range r.cfg.Brand {
		if d := levenshtein.ComputeDistance(key, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
