/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t5CSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Montserrat', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  text-align: center;
  color: #ffffff;
  background: radial-gradient(circle at top, var(--brand-primary), #0b1020 70%);
  padding: 2rem 1.5rem;
}

.logo {
  height: 3.5rem;
  width: auto;
  max-width: 200px;
  object-fit: contain;
  margin-bottom: 2rem;
}

.badge {
  display: inline-block;
  background: var(--brand-accent);
  color: #ffffff;
  font-size: 0.8rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.2em;
  padding: 0.375rem 1.25rem;
  border-radius: 9999px;
  margin-bottom: 1.5rem;
}

h1 {
  font-size: 3rem;
  font-weight: 800;
  line-height: 1.1;
  max-width: 760px;
  margin-bottom: 1rem;
}

.sub {
  font-size: 1.25rem;
  max-width: 560px;
  color: var(--brand-secondary);
  margin-bottom: 3rem;
}

.countdown {
  display: flex;
  gap: 1.25rem;
  margin-bottom: 3rem;
}

.unit {
  background: rgba(255, 255, 255, 0.08);
  border: 1px solid rgba(255, 255, 255, 0.15);
  border-radius: 0.75rem;
  padding: 1.25rem 1.5rem;
  min-width: 90px;
}

.unit .num {
  font-size: 2.5rem;
  font-weight: 800;
  color: var(--brand-accent);
  font-variant-numeric: tabular-nums;
}

.unit .lbl {
  font-size: 0.75rem;
  text-transform: uppercase;
  letter-spacing: 0.15em;
  color: var(--brand-secondary);
}

.cta {
  display: inline-block;
  background: var(--brand-accent);
  color: #ffffff;
  font-weight: 800;
  font-size: 1.25rem;
  padding: 1rem 3rem;
  border-radius: 0.75rem;
  text-decoration: none;
  box-shadow: 0 10px 40px rgba(0, 0, 0, 0.4);
  animation: pulse 2s infinite;
}

.cta:hover {
  opacity: 0.9;
}

.note {
  margin-top: 2rem;
  font-size: 0.875rem;
  color: var(--brand-secondary);
}

@keyframes pulse {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(1.04); }
}

@media (max-width: 640px) {
  h1 {
    font-size: 2rem;
  }

  .countdown {
    gap: 0.75rem;
  }

  .unit {
    min-width: 70px;
    padding: 1rem;
  }

  .unit .num {
    font-size: 1.75rem;
  }
}
`

const t5HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
{{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}" onerror="this.style.display='none';">{{end}}
<div class="badge">{{.BrandName}} launch</div>
<h1>{{.Headline}}</h1>
<p class="sub">{{.Subheadline}}</p>

<div class="countdown" id="countdown">
  <div class="unit">
    <div class="num" id="cdHours">23</div>
    <div class="lbl">Hours</div>
  </div>
  <div class="unit">
    <div class="num" id="cdMinutes">59</div>
    <div class="lbl">Minutes</div>
  </div>
  <div class="unit">
    <div class="num" id="cdSeconds">59</div>
    <div class="lbl">Seconds</div>
  </div>
</div>

<a class="cta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
<p class="note">Offer ends when the timer hits zero.</p>

<script>
(function() {
  var deadline = Date.now() + 24 * 60 * 60 * 1000;

  function pad(n) {
    return n < 10 ? '0' + n : '' + n;
  }

  function tick() {
    var left = Math.max(0, deadline - Date.now());
    var secs = Math.floor(left / 1000);
    document.getElementById('cdHours').textContent = pad(Math.floor(secs / 3600));
    document.getElementById('cdMinutes').textContent = pad(Math.floor(secs / 60) % 60);
    document.getElementById('cdSeconds').textContent = pad(secs % 60);
    if (left > 0) {
      setTimeout(tick, 250);
    }
  }

  tick();
})();
</script>
</body>
</html>
`

func newT5() *Template {
	return &Template{
		ID:          "t5",
		Name:        "Launch Countdown",
		Description: "Dark promo page with a live countdown timer driving urgency.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Montserrat:wght@400;600;700;800&display=swap",
		Defaults: brand.Config{
			BrandName: brand.DefaultBrandName,
			Colors: brand.Colors{
				Primary:   "#1D4ED8",
				Secondary: "#94A3B8",
				Accent:    "#F43F5E",
			},
			Copy: brand.Copy{
				Headline:    "Something Big Is Coming",
				Subheadline: "Our launch offer disappears when the clock runs out",
				CTA:         "Claim the Offer",
			},
		},
		css: t5CSS,
		doc: parseDoc("t5", t5HTML),
	}
}
