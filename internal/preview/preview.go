/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package preview patches an already rendered page in place so the editor
// can show brand edits instantly, without a full render round trip. It is
// best-effort text substitution over the renderer's output contract: colors
// live only in the three --brand-* declarations, and text fields appear as
// escaped literals.
package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/friendsincode/brandpage/internal/brand"
)

// Fields is the editable surface the reconciler understands.
type Fields struct {
	BrandName   string       `json:"brand_name"`
	Headline    string       `json:"headline"`
	Subheadline string       `json:"subheadline"`
	CTA         string       `json:"cta"`
	Colors      brand.Colors `json:"colors"`
}

// Reconcile rewrites the rendered html and css from prev to next. Color
// declarations are replaced wherever they appear, which covers both the
// standalone stylesheet and the copy embedded in the document. Text fields
// are substituted in their escaped form, so a value the renderer escaped is
// still found. Substitution is skipped for any prev field that is empty or
// unchanged.
func Reconcile(htmlDoc, css string, prev, next Fields) (string, string) {
	htmlDoc = reconcileColors(htmlDoc, prev.Colors, next.Colors)
	css = reconcileColors(css, prev.Colors, next.Colors)
	htmlDoc = reconcileText(htmlDoc, prev, next)
	return htmlDoc, css
}

func reconcileColors(s string, prev, next brand.Colors) string {
	s = replaceDecl(s, "--brand-primary", prev.Primary, next.Primary)
	s = replaceDecl(s, "--brand-secondary", prev.Secondary, next.Secondary)
	s = replaceDecl(s, "--brand-accent", prev.Accent, next.Accent)
	return s
}

func replaceDecl(s, prop, prev, next string) string {
	if !brand.ValidHex(next) || next == prev {
		return s
	}
	if !brand.ValidHex(prev) {
		return s
	}
	old := fmt.Sprintf("%s: %s;", prop, prev)
	repl := fmt.Sprintf("%s: %s;", prop, next)
	return strings.ReplaceAll(s, old, repl)
}

func reconcileText(s string, prev, next Fields) string {
	s = replaceLiteral(s, prev.Headline, next.Headline)
	s = replaceLiteral(s, prev.Subheadline, next.Subheadline)
	s = replaceLiteral(s, prev.CTA, next.CTA)
	s = replaceLiteral(s, prev.BrandName, next.BrandName)
	return s
}

func replaceLiteral(s, prev, next string) string {
	if prev == "" || prev == next {
		return s
	}
	return strings.ReplaceAll(s, html.EscapeString(prev), html.EscapeString(next))
}
