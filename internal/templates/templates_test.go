package templates

import (
	"strings"
	"testing"

	"github.com/friendsincode/brandpage/internal/brand"
)

func testConfig() brand.Config {
	return brand.Config{
		BrandName: "Acme Rockets",
		Colors: brand.Colors{
			Primary:   "#112233",
			Secondary: "#445566",
			Accent:    "#778899",
		},
		Copy: brand.Copy{
			Headline:    "Fly Higher",
			Subheadline: "Rocket-grade tooling for everyone",
			CTA:         "Launch Now",
		},
		CTAURL: "https://acme.example.com/signup",
	}
}

func TestEveryTemplateRendersEmptyConfig(t *testing.T) {
	for id, tpl := range registry {
		page, err := tpl.Render(brand.Config{})
		if err != nil {
			t.Fatalf("template %s: render empty config: %v", id, err)
		}
		if !strings.HasPrefix(page.HTML, "<!DOCTYPE html>") {
			t.Fatalf("template %s: not a full document", id)
		}
		if page.CSS == "" {
			t.Fatalf("template %s: empty css", id)
		}
	}
}

func TestEveryTemplateEmitsThreeCustomProperties(t *testing.T) {
	cfg := testConfig()
	for id, tpl := range registry {
		page, err := tpl.Render(cfg)
		if err != nil {
			t.Fatalf("template %s: %v", id, err)
		}
		for _, decl := range []string{
			"--brand-primary: #112233;",
			"--brand-secondary: #445566;",
			"--brand-accent: #778899;",
		} {
			if n := strings.Count(page.CSS, decl); n != 1 {
				t.Fatalf("template %s: declaration %q appears %d times", id, decl, n)
			}
			if !strings.Contains(page.HTML, decl) {
				t.Fatalf("template %s: html missing embedded declaration %q", id, decl)
			}
		}
	}
}

func TestTemplateDefaultsApplied(t *testing.T) {
	page, err := Get("t1").Render(brand.Config{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page.HTML, brand.DefaultHeadline) {
		t.Fatalf("t1 empty config should use the default headline")
	}
	if !strings.Contains(page.CSS, "--brand-primary: "+brand.DefaultPrimary+";") {
		t.Fatalf("t1 empty config should use the default primary color")
	}

	page, err = Get("t6").Render(brand.Config{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page.HTML, "WIN BIG WITH CASINO SLOTS!") {
		t.Fatalf("t6 empty config should use its own headline default")
	}
	if !strings.Contains(page.CSS, "--brand-primary: #FFD700;") {
		t.Fatalf("t6 empty config should use its own color defaults")
	}
}

func TestInvalidHexFallsBackToTemplateDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Colors.Primary = "not-a-color"
	page, err := Get("t1").Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(page.CSS, "not-a-color") {
		t.Fatalf("invalid color must never reach the stylesheet")
	}
	if !strings.Contains(page.CSS, "--brand-primary: "+brand.DefaultPrimary+";") {
		t.Fatalf("invalid primary should fall back to the template default")
	}
}

func TestBrandTextIsEscaped(t *testing.T) {
	cfg := testConfig()
	cfg.BrandName = `<script>alert("x")</script>`
	cfg.Copy.Headline = `Tom & Jerry <b>`
	for id, tpl := range registry {
		page, err := tpl.Render(cfg)
		if err != nil {
			t.Fatalf("template %s: %v", id, err)
		}
		if strings.Contains(page.HTML, `<script>alert("x")</script>`) {
			t.Fatalf("template %s: brand name injected unescaped", id)
		}
		if strings.Contains(page.HTML, "Tom & Jerry <b>") {
			t.Fatalf("template %s: headline injected unescaped", id)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := testConfig()
	for id, tpl := range registry {
		first, err := tpl.Render(cfg)
		if err != nil {
			t.Fatalf("template %s: %v", id, err)
		}
		second, err := tpl.Render(cfg)
		if err != nil {
			t.Fatalf("template %s: %v", id, err)
		}
		if first.HTML != second.HTML || first.CSS != second.CSS {
			t.Fatalf("template %s: repeated renders differ", id)
		}
	}
}

func TestCTAURLReachesDocument(t *testing.T) {
	cfg := testConfig()
	page, err := Get("t1").Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page.HTML, `href="https://acme.example.com/signup"`) {
		t.Fatalf("cta url should be bound to the cta link")
	}

	// The casino script binds the url in a js string context, where the
	// escaper rewrites slashes.
	page, err = Get("t6").Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page.HTML, "acme.example.com") {
		t.Fatalf("cta url should be bound into the page script")
	}

	cfg.CTAURL = ""
	page, err = Get("t6").Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(page.HTML, "acme.example.com") {
		t.Fatalf("empty cta url should leave no trace of the previous binding")
	}
}

func TestDispatchUnknownIDUsesDefault(t *testing.T) {
	page, res := Render("no-such-template", testConfig())
	if res.Tier != TierDefault {
		t.Fatalf("tier = %q, want %q", res.Tier, TierDefault)
	}
	if res.TemplateID != DefaultTemplateID {
		t.Fatalf("template = %q, want %q", res.TemplateID, DefaultTemplateID)
	}
	if !strings.Contains(page.HTML, "Fly Higher") {
		t.Fatalf("fallback page should still carry the brand headline")
	}
}

func TestDispatchKnownID(t *testing.T) {
	_, res := Render("t3", testConfig())
	if res.Tier != TierSelected || res.TemplateID != "t3" {
		t.Fatalf("got %+v, want selected t3", res)
	}
}

func TestDispatchFallsBackThroughChain(t *testing.T) {
	orig := registry
	defer func() { registry = orig }()

	// A template with no parsed document panics inside Render; the
	// dispatcher must recover and retry with the default.
	broken := &Template{ID: "t9", Name: "Broken"}
	registry = map[string]*Template{
		"t9":              broken,
		DefaultTemplateID: orig[DefaultTemplateID],
	}

	page, res := Render("t9", testConfig())
	if res.Tier != TierDefault || res.TemplateID != DefaultTemplateID {
		t.Fatalf("got %+v, want default fallback", res)
	}
	if !strings.Contains(page.HTML, "Acme Rockets") {
		t.Fatalf("default fallback page should carry the brand name")
	}

	registry = map[string]*Template{
		"t9":              broken,
		DefaultTemplateID: {ID: DefaultTemplateID, Name: "Broken default"},
	}

	page, res = Render("t9", testConfig())
	if res.Tier != TierGeneric || res.TemplateID != "generic" {
		t.Fatalf("got %+v, want generic fallback", res)
	}
	if !strings.Contains(page.HTML, "Acme Rockets") {
		t.Fatalf("generic page should carry the brand name")
	}
	if !strings.Contains(page.HTML, "Launch Now") {
		t.Fatalf("generic page should carry the cta label")
	}
}

func TestGenericPageNeverFails(t *testing.T) {
	cfg := brand.Config{
		BrandName: "<Edge> & Co",
		Colors:    brand.Colors{Primary: "nope", Secondary: "", Accent: "#ZZZZZZ"},
	}
	page := renderGeneric(cfg)
	if !strings.Contains(page.HTML, "&lt;Edge&gt; &amp; Co") {
		t.Fatalf("generic page must escape brand text, got: %.200s", page.HTML)
	}
	if !strings.Contains(page.CSS, "--brand-primary: "+brand.DefaultPrimary+";") {
		t.Fatalf("generic page must revalidate colors")
	}
}

func TestListCatalog(t *testing.T) {
	infos := List()
	if len(infos) != 7 {
		t.Fatalf("catalog has %d entries, want 7", len(infos))
	}
	for i, want := range []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"} {
		if infos[i].ID != want {
			t.Fatalf("catalog[%d] = %q, want %q", i, infos[i].ID, want)
		}
	}
	for _, info := range infos {
		if info.Name == "" || info.Description == "" {
			t.Fatalf("catalog entry %s missing name or description", info.ID)
		}
	}
}
