/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t2CSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Poppins', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  line-height: 1.6;
  color: #ffffff;
  background: #0f172a;
}

.hero {
  min-height: 85vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  text-align: center;
  padding: 4rem 1.5rem;
  background: linear-gradient(135deg, var(--brand-primary), var(--brand-accent));
}

.hero img.logo {
  height: 4rem;
  width: auto;
  max-width: 220px;
  object-fit: contain;
  margin-bottom: 2rem;
  filter: drop-shadow(0 4px 8px rgba(0, 0, 0, 0.4));
}

.hero .kicker {
  text-transform: uppercase;
  letter-spacing: 0.3em;
  font-size: 0.875rem;
  font-weight: 600;
  opacity: 0.85;
  margin-bottom: 1.25rem;
}

.hero h1 {
  font-size: 3.5rem;
  font-weight: 800;
  line-height: 1.1;
  max-width: 820px;
  margin-bottom: 1.5rem;
  text-shadow: 0 2px 8px rgba(0, 0, 0, 0.25);
}

.hero p {
  font-size: 1.375rem;
  max-width: 640px;
  opacity: 0.92;
  margin-bottom: 2.5rem;
}

.cta {
  display: inline-block;
  background: #ffffff;
  color: var(--brand-primary);
  font-weight: 700;
  font-size: 1.25rem;
  padding: 1rem 3rem;
  border-radius: 9999px;
  text-decoration: none;
  box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3);
  transition: transform 0.15s ease;
}

.cta:hover {
  transform: scale(1.05);
}

.stats {
  display: flex;
  justify-content: center;
  gap: 4rem;
  flex-wrap: wrap;
  padding: 4rem 1.5rem;
  background: #1e293b;
}

.stat {
  text-align: center;
  min-width: 140px;
}

.stat .value {
  font-size: 2.5rem;
  font-weight: 800;
  color: var(--brand-accent);
}

.stat .label {
  font-size: 0.95rem;
  color: var(--brand-secondary);
  text-transform: uppercase;
  letter-spacing: 0.1em;
}

.closing {
  text-align: center;
  padding: 5rem 1.5rem;
}

.closing h2 {
  font-size: 2rem;
  font-weight: 700;
  margin-bottom: 2rem;
}

.footer {
  text-align: center;
  padding: 2rem 1.5rem;
  color: var(--brand-secondary);
  font-size: 0.875rem;
  background: #0b1222;
}

@media (max-width: 640px) {
  .hero h1 {
    font-size: 2.25rem;
  }

  .stats {
    gap: 2rem;
  }
}
`

const t2HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
<header class="hero">
  {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}" onerror="this.style.display='none';">{{end}}
  <div class="kicker">{{.BrandName}}</div>
  <h1>{{.Headline}}</h1>
  <p>{{.Subheadline}}</p>
  <a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
</header>

<section class="stats">
  <div class="stat">
    <div class="value">10k+</div>
    <div class="label">Customers</div>
  </div>
  <div class="stat">
    <div class="value">99.9%</div>
    <div class="label">Uptime</div>
  </div>
  <div class="stat">
    <div class="value">4.9&#9733;</div>
    <div class="label">Avg Rating</div>
  </div>
  <div class="stat">
    <div class="value">24/7</div>
    <div class="label">Support</div>
  </div>
</section>

<section class="closing">
  <h2>Ready to get started?</h2>
  <a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
</section>

<footer class="footer">
  <p>&copy; {{.BrandName}}. All rights reserved.</p>
</footer>
</body>
</html>
`

func newT2() *Template {
	return &Template{
		ID:          "t2",
		Name:        "Bold Marketing",
		Description: "Full-bleed gradient hero with a stats band. Loud and confident.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Poppins:wght@400;600;700;800&display=swap",
		Defaults: brand.Config{
			BrandName: brand.DefaultBrandName,
			Colors: brand.Colors{
				Primary:   "#7C3AED",
				Secondary: "#94A3B8",
				Accent:    "#F59E0B",
			},
			Copy: brand.Copy{
				Headline:    "Make Something People Talk About",
				Subheadline: "The platform ambitious teams use to launch faster and grow louder",
				CTA:         "Start Free",
			},
		},
		css: t2CSS,
		doc: parseDoc("t2", t2HTML),
	}
}
