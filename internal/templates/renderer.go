/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package templates renders brand configurations into complete standalone
// landing pages. Each template is an independently authored html/template
// document plus a static stylesheet; brand colors flow exclusively through
// the --brand-primary/secondary/accent custom properties so color-only
// edits can be applied downstream by rewriting those declarations alone.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/friendsincode/brandpage/internal/brand"
)

// Page is a rendered document: a full standalone HTML document and the
// stylesheet embedded in it.
type Page struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

// Template is one registered landing page design.
type Template struct {
	ID          string
	Name        string
	Description string

	// Template-specific literal defaults applied to empty fields.
	Defaults brand.Config

	// Optional web font stylesheet URL, the only permitted external
	// dependency besides the logo.
	FontHref string

	css string
	doc *template.Template
}

type pageView struct {
	BrandName   string
	LogoURL     string
	Headline    string
	Subheadline string
	CTA         string
	CTAURL      string
	Description string
	Industry    string
	FontHref    string
	Colors      brand.Colors
	CSS         template.CSS
}

var funcMap = template.FuncMap{
	"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	"upper":   strings.ToUpper,
	"lower":   strings.ToLower,
}

func parseDoc(id, text string) *template.Template {
	return template.Must(template.New(id).Funcs(funcMap).Parse(text))
}

// Render produces the template's page for cfg. It tolerates every field of
// cfg being empty and substitutes the template's literal defaults. Colors
// that are not valid hex are replaced by the template defaults before they
// reach the stylesheet; brand text is contextually escaped by
// html/template.
func (t *Template) Render(cfg brand.Config) (Page, error) {
	v := t.view(cfg)

	css := cssVariables(v.Colors) + t.css
	v.CSS = template.CSS(css)

	var buf bytes.Buffer
	if err := t.doc.Execute(&buf, v); err != nil {
		return Page{}, fmt.Errorf("execute template %s: %w", t.ID, err)
	}

	return Page{HTML: buf.String(), CSS: css}, nil
}

func (t *Template) view(cfg brand.Config) pageView {
	v := pageView{
		BrandName:   fallback(cfg.BrandName, t.Defaults.BrandName),
		LogoURL:     cfg.LogoURL,
		Headline:    fallback(cfg.Copy.Headline, t.Defaults.Copy.Headline),
		Subheadline: fallback(cfg.Copy.Subheadline, t.Defaults.Copy.Subheadline),
		CTA:         fallback(cfg.Copy.CTA, t.Defaults.Copy.CTA),
		CTAURL:      cfg.CTAURL,
		Description: cfg.Description,
		Industry:    cfg.Industry,
		FontHref:    t.FontHref,
		Colors:      t.colors(cfg),
	}
	return v
}

func (t *Template) colors(cfg brand.Config) brand.Colors {
	return brand.Colors{
		Primary:   safeHexOr(cfg.Colors.Primary, t.Defaults.Colors.Primary),
		Secondary: safeHexOr(cfg.Colors.Secondary, t.Defaults.Colors.Secondary),
		Accent:    safeHexOr(cfg.Colors.Accent, t.Defaults.Colors.Accent),
	}
}

func cssVariables(c brand.Colors) string {
	return fmt.Sprintf(":root {\n  --brand-primary: %s;\n  --brand-secondary: %s;\n  --brand-accent: %s;\n}\n", c.Primary, c.Secondary, c.Accent)
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeHexOr(s, def string) string {
	if brand.ValidHex(s) {
		return s
	}
	if brand.ValidHex(def) {
		return def
	}
	return brand.DefaultPrimary
}
