/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t1CSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  line-height: 1.6;
  color: #1f2937;
  background: #ffffff;
}

.nav {
  display: flex;
  align-items: center;
  justify-content: space-between;
  max-width: 1100px;
  margin: 0 auto;
  padding: 1.25rem 1.5rem;
}

.nav .brand {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  font-weight: 700;
  font-size: 1.25rem;
  color: var(--brand-primary);
}

.nav .brand img {
  height: 2.25rem;
  width: auto;
  max-width: 160px;
  object-fit: contain;
}

.hero {
  max-width: 760px;
  margin: 0 auto;
  padding: 6rem 1.5rem 4rem;
  text-align: center;
}

.hero h1 {
  font-size: 3rem;
  font-weight: 800;
  line-height: 1.15;
  color: #111827;
  margin-bottom: 1.25rem;
}

.hero p {
  font-size: 1.25rem;
  color: var(--brand-secondary);
  margin-bottom: 2.5rem;
}

.cta {
  display: inline-block;
  background: var(--brand-primary);
  color: #ffffff;
  font-weight: 600;
  font-size: 1.125rem;
  padding: 0.875rem 2.25rem;
  border-radius: 0.5rem;
  text-decoration: none;
  transition: opacity 0.15s ease;
}

.cta:hover {
  opacity: 0.9;
}

.features {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
  gap: 2rem;
  max-width: 960px;
  margin: 0 auto;
  padding: 3rem 1.5rem 5rem;
}

.feature {
  text-align: center;
  padding: 1.5rem;
}

.feature .dot {
  width: 3rem;
  height: 3rem;
  margin: 0 auto 1rem;
  border-radius: 0.75rem;
  background: var(--brand-accent);
  opacity: 0.9;
}

.feature h3 {
  font-size: 1.125rem;
  margin-bottom: 0.5rem;
  color: #111827;
}

.feature p {
  color: var(--brand-secondary);
  font-size: 0.95rem;
}

.footer {
  border-top: 1px solid #e5e7eb;
  text-align: center;
  padding: 2rem 1.5rem;
  color: var(--brand-secondary);
  font-size: 0.875rem;
}

@media (max-width: 640px) {
  .hero h1 {
    font-size: 2.125rem;
  }

  .hero {
    padding-top: 4rem;
  }
}
`

const t1HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
<nav class="nav">
  <div class="brand">
    {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.BrandName}}" onerror="this.style.display='none';">{{end}}
    <span>{{.BrandName}}</span>
  </div>
  <a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
</nav>

<header class="hero">
  <h1>{{.Headline}}</h1>
  <p>{{.Subheadline}}</p>
  <a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
</header>

<section class="features">
  <div class="feature">
    <div class="dot"></div>
    <h3>Fast Setup</h3>
    <p>Go from zero to live in minutes, not weeks.</p>
  </div>
  <div class="feature">
    <div class="dot"></div>
    <h3>Built to Scale</h3>
    <p>Infrastructure that grows with your business.</p>
  </div>
  <div class="feature">
    <div class="dot"></div>
    <h3>Always On</h3>
    <p>Reliable service backed by real support.</p>
  </div>
</section>

<footer class="footer">
  <p>&copy; {{.BrandName}}. All rights reserved.</p>
</footer>
</body>
</html>
`

func newT1() *Template {
	return &Template{
		ID:          "t1",
		Name:        "Minimal SaaS",
		Description: "Clean, centered hero with a feature trio. A safe default for any brand.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700;800&display=swap",
		Defaults: brand.Config{
			BrandName: brand.DefaultBrandName,
			Colors: brand.Colors{
				Primary:   brand.DefaultPrimary,
				Secondary: brand.DefaultSecondary,
				Accent:    brand.DefaultAccent,
			},
			Copy: brand.Copy{
				Headline:    brand.DefaultHeadline,
				Subheadline: brand.DefaultSubheadline,
				CTA:         brand.DefaultCTA,
			},
		},
		css: t1CSS,
		doc: parseDoc("t1", t1HTML),
	}
}
