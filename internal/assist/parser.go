/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package assist

import (
	"regexp"
	"strings"

	"github.com/friendsincode/brandpage/internal/brand"
)

var (
	hexColorRe = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)
	quotedRe   = regexp.MustCompile(`"([^"]+)"`)
)

// Keyword groups gating each extraction. The user's message, not the
// model's reply, decides what kind of change was asked for.
var (
	colorKeywords    = []string{"color", "blue", "red", "green"}
	headlineKeywords = []string{"headline", "title"}
	ctaKeywords      = []string{"button", "cta"}
)

// ParseChanges mines the model's answer for changes matching what the
// user asked about. Color requests take hex codes in order of appearance,
// falling back to the current palette for unstated slots. Headline
// requests take the first quoted phrase, CTA requests the last. Returns
// nil when nothing actionable was found.
func ParseChanges(message, answer string, current brand.Colors) *Changes {
	lower := strings.ToLower(message)
	var changes *Changes

	if containsAny(lower, colorKeywords) {
		if hexes := hexColorRe.FindAllString(answer, -1); len(hexes) > 0 {
			colors := &brand.Colors{
				Primary:   hexes[0],
				Secondary: current.Secondary,
				Accent:    current.Accent,
			}
			if len(hexes) > 1 {
				colors.Secondary = hexes[1]
			}
			if len(hexes) > 2 {
				colors.Accent = hexes[2]
			}
			changes = &Changes{Colors: colors}
		}
	}

	if containsAny(lower, headlineKeywords) {
		if quoted := quotedRe.FindAllStringSubmatch(answer, -1); len(quoted) > 0 {
			if changes == nil {
				changes = &Changes{}
			}
			if changes.Content == nil {
				changes.Content = &ContentChanges{}
			}
			changes.Content.Headline = quoted[0][1]
		}
	}

	if containsAny(lower, ctaKeywords) {
		if quoted := quotedRe.FindAllStringSubmatch(answer, -1); len(quoted) > 0 {
			if changes == nil {
				changes = &Changes{}
			}
			if changes.Content == nil {
				changes.Content = &ContentChanges{}
			}
			changes.Content.CTA = quoted[len(quoted)-1][1]
		}
	}

	return changes
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
