/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package brand defines the normalized brand configuration consumed by
// every template renderer, and the resolution rules that build one from
// raw edits layered over a site's persisted values.
package brand

import (
	"regexp"
	"strings"

	"github.com/friendsincode/brandpage/internal/models"
)

// Fixed literal defaults. Renderers may override copy defaults with
// template-specific literals; these are the resolution-layer fallbacks.
const (
	DefaultBrandName   = "Brand"
	DefaultPrimary     = "#3B82F6"
	DefaultSecondary   = "#6B7280"
	DefaultAccent      = "#10B981"
	DefaultHeadline    = "Transform Your Business"
	DefaultSubheadline = "Get started with our amazing service today"
	DefaultCTA         = "Get Started"
)

var hexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHex reports whether s is a "#" followed by exactly six hex digits.
func ValidHex(s string) bool {
	return hexRe.MatchString(s)
}

// Colors is a complete three-color palette. Renderers never receive a
// partial set.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Copy holds the page text fields, each independently defaultable.
type Copy struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTA         string `json:"cta"`
}

// Config is the fully resolved description of one page's brand content.
// Constructed per render call; not itself persisted.
type Config struct {
	BrandName   string `json:"brand_name"`
	LogoURL     string `json:"logo_url,omitempty"`
	Colors      Colors `json:"colors"`
	Copy        Copy   `json:"copy"`
	CTAURL      string `json:"cta_url,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
}

// Edits carries raw in-flight field edits. Nil pointers mean "not edited";
// empty strings are deliberate edits to empty.
type Edits struct {
	BrandName   *string
	Description *string
	Headline    *string
	Subheadline *string
	CTA         *string
	LogoURL     *string
	Primary     *string
	Secondary   *string
	Accent      *string
	CTAURL      *string
}

// ValidColors returns the subset of edited color fields that pass hex
// validation. Malformed values are silently discarded; validation failure
// is never fatal to the caller's save.
func (e Edits) ValidColors() Edits {
	out := e
	if out.Primary != nil && !ValidHex(*out.Primary) {
		out.Primary = nil
	}
	if out.Secondary != nil && !ValidHex(*out.Secondary) {
		out.Secondary = nil
	}
	if out.Accent != nil && !ValidHex(*out.Accent) {
		out.Accent = nil
	}
	return out
}

// Resolve builds a complete Config from edits layered over a site's
// persisted values: explicit edit, else persisted value, else the fixed
// default. Colors in edits must already be validated (ValidColors).
func Resolve(edits Edits, site *models.Site) Config {
	cfg := Config{
		BrandName: pick(edits.BrandName, site.BrandName, DefaultBrandName),
		LogoURL:   pick(edits.LogoURL, site.LogoURL, ""),
		Colors: Colors{
			Primary:   pick(edits.Primary, site.PrimaryColor, DefaultPrimary),
			Secondary: pick(edits.Secondary, site.SecondaryColor, DefaultSecondary),
			Accent:    pick(edits.Accent, site.AccentColor, DefaultAccent),
		},
		Copy: Copy{
			Headline:    pick(edits.Headline, site.Headline, DefaultHeadline),
			Subheadline: pick(edits.Subheadline, site.Subheadline, DefaultSubheadline),
			CTA:         pick(edits.CTA, site.CTA, DefaultCTA),
		},
		Industry:    site.Industry,
		Description: pick(edits.Description, site.Description, ""),
	}

	// ctaUrl is render-only input; it has no site column.
	if edits.CTAURL != nil {
		cfg.CTAURL = strings.TrimSpace(*edits.CTAURL)
	}

	return cfg
}

// FromSite builds a Config from persisted values alone.
func FromSite(site *models.Site) Config {
	return Resolve(Edits{}, site)
}

func pick(edit *string, existing, def string) string {
	if edit != nil && *edit != "" {
		return *edit
	}
	if edit != nil && *edit == "" {
		// A deliberate edit to empty falls through to the default rather
		// than rendering an empty field.
		if def != "" {
			return def
		}
		return ""
	}
	if existing != "" {
		return existing
	}
	return def
}
