/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t4CSS = `* {
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

.topbar {
  background: var(--brand-primary);
  color: #ffffff;
  text-align: center;
  padding: 0.5rem 1rem;
  font-size: 0.875rem;
  font-weight: 600;
}

.nav {
  display: flex;
  align-items: center;
  justify-content: space-between;
  max-width: 1140px;
  margin: 0 auto;
  padding: 1.25rem 1.5rem;
  border-bottom: 1px solid #f1f5f9;
}

.nav .brand {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  font-weight: 700;
  font-size: 1.25rem;
}

.nav .brand img {
  height: 2.25rem;
  width: auto;
  max-width: 160px;
  object-fit: contain;
}

.intro {
  text-align: center;
  max-width: 720px;
  margin: 0 auto;
  padding: 4rem 1.5rem 2rem;
}

.intro h1 {
  font-size: 2.75rem;
  font-weight: 800;
  line-height: 1.15;
  margin-bottom: 1rem;
}

.intro p {
  font-size: 1.125rem;
  color: var(--brand-secondary);
}

.grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 1.5rem;
  max-width: 1140px;
  margin: 0 auto;
  padding: 2rem 1.5rem 4rem;
}

.card {
  border: 1px solid #e2e8f0;
  border-radius: 0.75rem;
  overflow: hidden;
  transition: box-shadow 0.15s ease, transform 0.15s ease;
}

.card:hover {
  box-shadow: 0 12px 24px rgba(15, 23, 42, 0.08);
  transform: translateY(-2px);
}

.card .thumb {
  height: 140px;
  background: linear-gradient(135deg, var(--brand-primary), var(--brand-accent));
  opacity: 0.85;
}

.card .body {
  padding: 1.25rem;
}

.card h3 {
  font-size: 1.0625rem;
  margin-bottom: 0.375rem;
}

.card p {
  font-size: 0.9rem;
  color: var(--brand-secondary);
}

.band {
  background: #f8fafc;
  text-align: center;
  padding: 4rem 1.5rem;
}

.band h2 {
  font-size: 1.75rem;
  font-weight: 700;
  margin-bottom: 1.5rem;
}

.cta {
  display: inline-block;
  background: var(--brand-accent);
  color: #ffffff;
  font-weight: 700;
  font-size: 1.125rem;
  padding: 0.875rem 2.5rem;
  border-radius: 0.5rem;
  text-decoration: none;
}

.cta:hover {
  opacity: 0.9;
}

.footer {
  text-align: center;
  padding: 2rem 1.5rem;
  color: var(--brand-secondary);
  font-size: 0.875rem;
}

@media (max-width: 640px) {
  .intro h1 {
    font-size: 2rem;
  }
}
`

const t4HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
<div class="topbar">{{.Subheadline}}</div>

<nav class="nav">
  <div class="brand">
    {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.BrandName}}" onerror="this.style.display='none';">{{end}}
    <span>{{.BrandName}}</span>
  </div>
  <a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
</nav>

<header class="intro">
  <h1>{{.Headline}}</h1>
  <p>{{.Subheadline}}</p>
</header>

<section class="grid">
  <div class="card">
    <div class="thumb"></div>
    <div class="body">
      <h3>Starter</h3>
      <p>Everything you need to get moving on day one.</p>
    </div>
  </div>
  <div class="card">
    <div class="thumb"></div>
    <div class="body">
      <h3>Professional</h3>
      <p>Advanced tooling for teams that ship fast.</p>
    </div>
  </div>
  <div class="card">
    <div class="thumb"></div>
    <div class="body">
      <h3>Enterprise</h3>
      <p>Security, controls, and support at scale.</p>
    </div>
  </div>
  <div class="card">
    <div class="thumb"></div>
    <div class="body">
      <h3>Add-ons</h3>
      <p>Extend the platform with integrations and extras.</p>
    </div>
  </div>
</section>

<section class="band">
  <h2>Find the plan that fits</h2>
  <a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
</section>

<footer class="footer">
  <p>&copy; {{.BrandName}}. All rights reserved.</p>
</footer>
</body>
</html>
`

func newT4() *Template {
	return &Template{
		ID:          "t4",
		Name:        "Product Grid",
		Description: "Storefront-style layout with a product card grid and closing band.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700;800&display=swap",
		Defaults: brand.Config{
			BrandName: brand.DefaultBrandName,
			Colors: brand.Colors{
				Primary:   "#0F766E",
				Secondary: "#6B7280",
				Accent:    "#EA580C",
			},
			Copy: brand.Copy{
				Headline:    "Everything You Need in One Place",
				Subheadline: "Free shipping on all orders this week",
				CTA:         "Shop Now",
			},
		},
		css: t4CSS,
		doc: parseDoc("t4", t4HTML),
	}
}
