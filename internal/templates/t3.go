/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t3CSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  line-height: 1.6;
  color: #1f2937;
  background: #f8fafc;
}

.wrap {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 3rem;
  max-width: 1100px;
  margin: 0 auto;
  padding: 5rem 1.5rem;
  align-items: center;
  min-height: 90vh;
}

.pitch img.logo {
  height: 3rem;
  width: auto;
  max-width: 180px;
  object-fit: contain;
  margin-bottom: 1.5rem;
}

.pitch h1 {
  font-size: 2.75rem;
  font-weight: 800;
  line-height: 1.15;
  color: #0f172a;
  margin-bottom: 1rem;
}

.pitch h1 em {
  font-style: normal;
  color: var(--brand-primary);
}

.pitch p {
  font-size: 1.125rem;
  color: var(--brand-secondary);
  margin-bottom: 1.5rem;
}

.bullets {
  list-style: none;
}

.bullets li {
  padding-left: 1.75rem;
  position: relative;
  margin-bottom: 0.75rem;
  color: #334155;
}

.bullets li::before {
  content: '\2713';
  position: absolute;
  left: 0;
  color: var(--brand-accent);
  font-weight: 700;
}

.panel {
  background: #ffffff;
  border: 1px solid #e2e8f0;
  border-radius: 1rem;
  padding: 2.5rem;
  box-shadow: 0 20px 40px rgba(15, 23, 42, 0.08);
}

.panel h2 {
  font-size: 1.375rem;
  margin-bottom: 0.5rem;
}

.panel .sub {
  color: var(--brand-secondary);
  font-size: 0.95rem;
  margin-bottom: 1.5rem;
}

.field {
  margin-bottom: 1rem;
}

.field label {
  display: block;
  font-size: 0.875rem;
  font-weight: 600;
  margin-bottom: 0.375rem;
  color: #334155;
}

.field input {
  width: 100%;
  padding: 0.75rem 1rem;
  border: 1px solid #cbd5e1;
  border-radius: 0.5rem;
  font-size: 1rem;
}

.field input:focus {
  outline: 2px solid var(--brand-primary);
  border-color: transparent;
}

.submit {
  width: 100%;
  background: var(--brand-primary);
  color: #ffffff;
  font-weight: 700;
  font-size: 1.0625rem;
  padding: 0.875rem;
  border: none;
  border-radius: 0.5rem;
  cursor: pointer;
  margin-top: 0.5rem;
}

.submit:hover {
  opacity: 0.9;
}

.fineprint {
  font-size: 0.8rem;
  color: var(--brand-secondary);
  text-align: center;
  margin-top: 1rem;
}

.modal {
  position: fixed;
  inset: 0;
  background: rgba(15, 23, 42, 0.6);
  display: none;
  align-items: center;
  justify-content: center;
  z-index: 1000;
}

.modal.show {
  display: flex;
}

.modal-card {
  background: #ffffff;
  border-radius: 1rem;
  padding: 2.5rem;
  max-width: 420px;
  margin: 1rem;
  text-align: center;
}

.modal-card h3 {
  font-size: 1.5rem;
  color: var(--brand-primary);
  margin-bottom: 0.75rem;
}

.modal-card p {
  color: #475569;
  margin-bottom: 1.5rem;
}

.modal-card .go {
  display: inline-block;
  background: var(--brand-accent);
  color: #ffffff;
  font-weight: 700;
  padding: 0.75rem 2rem;
  border-radius: 0.5rem;
  text-decoration: none;
}

.modal-card .dismiss {
  display: block;
  margin: 1rem auto 0;
  background: none;
  border: none;
  color: var(--brand-secondary);
  text-decoration: underline;
  cursor: pointer;
  font-size: 0.875rem;
}

@media (max-width: 820px) {
  .wrap {
    grid-template-columns: 1fr;
    padding-top: 3rem;
  }

  .pitch h1 {
    font-size: 2rem;
  }
}
`

const t3HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
<div class="wrap">
  <div class="pitch">
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}" onerror="this.style.display='none';">{{end}}
    <h1><em>{{.BrandName}}</em><br>{{.Headline}}</h1>
    <p>{{.Subheadline}}</p>
    <ul class="bullets">
      <li>No credit card required</li>
      <li>Set up in under five minutes</li>
      <li>Cancel anytime</li>
    </ul>
  </div>

  <div class="panel">
    <h2>Get early access</h2>
    <p class="sub">Join the list and we'll be in touch.</p>
    <form id="leadForm">
      <div class="field">
        <label for="leadName">Name</label>
        <input type="text" id="leadName" name="name" placeholder="Your name" required>
      </div>
      <div class="field">
        <label for="leadEmail">Work email</label>
        <input type="email" id="leadEmail" name="email" placeholder="you@company.com" required>
      </div>
      <button type="submit" class="submit">{{.CTA}}</button>
    </form>
    <p class="fineprint">We'll never share your email with anyone.</p>
  </div>
</div>

<div id="thanksModal" class="modal">
  <div class="modal-card">
    <h3>You're on the list!</h3>
    <p>Thanks for your interest in {{.BrandName}}. We'll reach out soon.</p>
    <a class="go" id="modalCta" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#{{end}}">{{.CTA}}</a>
    <button class="dismiss" id="modalClose">Close</button>
  </div>
</div>

<script>
document.getElementById('leadForm').addEventListener('submit', function(e) {
  e.preventDefault();
  document.getElementById('thanksModal').classList.add('show');
});

document.getElementById('modalClose').addEventListener('click', function() {
  document.getElementById('thanksModal').classList.remove('show');
});
</script>
</body>
</html>
`

func newT3() *Template {
	return &Template{
		ID:          "t3",
		Name:        "Lead Generation",
		Description: "Split layout with an inline signup form and thank-you modal.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700;800&display=swap",
		Defaults: brand.Config{
			BrandName: brand.DefaultBrandName,
			Colors: brand.Colors{
				Primary:   "#0EA5E9",
				Secondary: "#64748B",
				Accent:    "#22C55E",
			},
			Copy: brand.Copy{
				Headline:    "Be First in Line",
				Subheadline: "A smarter way to reach the customers who matter most",
				CTA:         "Request Access",
			},
		},
		css: t3CSS,
		doc: parseDoc("t3", t3HTML),
	}
}
