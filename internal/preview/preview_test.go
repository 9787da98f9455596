package preview

import (
	"strings"
	"testing"

	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/templates"
)

func renderedPage(t *testing.T) (string, string, brand.Config) {
	t.Helper()
	cfg := brand.Config{
		BrandName: "Northwind",
		Colors:    brand.Colors{Primary: "#112233", Secondary: "#445566", Accent: "#778899"},
		Copy: brand.Copy{
			Headline:    "Sail Further",
			Subheadline: "Charts & compasses for modern crews",
			CTA:         "Set Course",
		},
	}
	page, err := templates.Get("t1").Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return page.HTML, page.CSS, cfg
}

func fields(cfg brand.Config) Fields {
	return Fields{
		BrandName:   cfg.BrandName,
		Headline:    cfg.Copy.Headline,
		Subheadline: cfg.Copy.Subheadline,
		CTA:         cfg.Copy.CTA,
		Colors:      cfg.Colors,
	}
}

func TestReconcileColors(t *testing.T) {
	htmlDoc, css, cfg := renderedPage(t)
	prev := fields(cfg)
	next := prev
	next.Colors.Primary = "#AA0000"

	gotHTML, gotCSS := Reconcile(htmlDoc, css, prev, next)

	if !strings.Contains(gotCSS, "--brand-primary: #AA0000;") {
		t.Fatalf("css primary declaration not rewritten")
	}
	if strings.Contains(gotCSS, "#112233") {
		t.Fatalf("old primary still present in css")
	}
	if !strings.Contains(gotHTML, "--brand-primary: #AA0000;") {
		t.Fatalf("embedded stylesheet not rewritten")
	}
	if !strings.Contains(gotCSS, "--brand-secondary: #445566;") {
		t.Fatalf("untouched colors must survive")
	}
}

func TestReconcileRejectsInvalidNextColor(t *testing.T) {
	htmlDoc, css, cfg := renderedPage(t)
	prev := fields(cfg)
	next := prev
	next.Colors.Primary = "red"

	_, gotCSS := Reconcile(htmlDoc, css, prev, next)
	if !strings.Contains(gotCSS, "--brand-primary: #112233;") {
		t.Fatalf("invalid next color must leave the declaration alone")
	}
}

func TestReconcileTextUsesEscapedForm(t *testing.T) {
	htmlDoc, css, cfg := renderedPage(t)
	prev := fields(cfg)
	next := prev
	next.Subheadline = "Maps & more"

	gotHTML, _ := Reconcile(htmlDoc, css, prev, next)

	if strings.Contains(gotHTML, "Charts &amp; compasses") {
		t.Fatalf("previous subheadline still present")
	}
	if !strings.Contains(gotHTML, "Maps &amp; more") {
		t.Fatalf("next subheadline should be inserted escaped")
	}
	if strings.Contains(gotHTML, "Maps & more") {
		t.Fatalf("next subheadline must not be inserted raw")
	}
}

func TestReconcileSkipsEmptyPrev(t *testing.T) {
	htmlDoc, css, cfg := renderedPage(t)
	prev := fields(cfg)
	prev.Headline = ""
	next := prev
	next.Headline = "Brand New"

	gotHTML, _ := Reconcile(htmlDoc, css, prev, next)
	if gotHTML != htmlDoc {
		t.Fatalf("empty prev headline must not trigger substitution")
	}
}

func TestReconcileUnchangedIsIdentity(t *testing.T) {
	htmlDoc, css, cfg := renderedPage(t)
	prev := fields(cfg)

	gotHTML, gotCSS := Reconcile(htmlDoc, css, prev, prev)
	if gotHTML != htmlDoc || gotCSS != css {
		t.Fatalf("identical prev and next must be a no-op")
	}
}
