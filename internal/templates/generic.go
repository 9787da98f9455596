/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import (
	"fmt"
	"html"

	"github.com/friendsincode/brandpage/internal/brand"
)

const genericCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  min-height: 100vh;
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--brand-secondary);
  color: #ffffff;
  text-align: center;
}
.card { max-width: 32rem; padding: 3rem 2rem; }
.card h1 { font-size: 2.25rem; margin-bottom: 1rem; color: var(--brand-primary); }
.card p { font-size: 1.125rem; margin-bottom: 2rem; opacity: 0.85; }
.card a {
  display: inline-block;
  padding: 0.875rem 2rem;
  border-radius: 0.5rem;
  background: var(--brand-accent);
  color: #ffffff;
  font-weight: 600;
  text-decoration: none;
}
`

// renderGeneric builds the last-resort page without the template engine at
// all, so it cannot fail the way a registered renderer can. Text is escaped
// by hand and colors are revalidated before they touch the stylesheet.
func renderGeneric(cfg brand.Config) Page {
	name := html.EscapeString(fallback(cfg.BrandName, brand.DefaultBrandName))
	headline := html.EscapeString(fallback(cfg.Copy.Headline, brand.DefaultHeadline))
	sub := html.EscapeString(fallback(cfg.Copy.Subheadline, brand.DefaultSubheadline))
	cta := html.EscapeString(fallback(cfg.Copy.CTA, brand.DefaultCTA))
	ctaURL := html.EscapeString(fallback(cfg.CTAURL, "#"))

	colors := brand.Colors{
		Primary:   safeHexOr(cfg.Colors.Primary, brand.DefaultPrimary),
		Secondary: safeHexOr(cfg.Colors.Secondary, brand.DefaultSecondary),
		Accent:    safeHexOr(cfg.Colors.Accent, brand.DefaultAccent),
	}
	css := cssVariables(colors) + genericCSS

	htmlDoc := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>%s</style>
</head>
<body>
<div class="card">
<h1>%s</h1>
<p>%s</p>
<a href="%s">%s</a>
</div>
</body>
</html>
`, name, css, headline, sub, ctaURL, cta)

	return Page{HTML: htmlDoc, CSS: css}
}
