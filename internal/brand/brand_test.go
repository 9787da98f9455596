package brand

import (
	"testing"

	"github.com/friendsincode/brandpage/internal/models"
)

func strp(s string) *string { return &s }

func TestValidHex(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"#112233", true},
		{"#AABBCC", true},
		{"#aabbcc", true},
		{"blue", false},
		{"#12345", false},
		{"#1234567", false},
		{"#GGGGGG", false},
		{"112233", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidHex(tc.in); got != tc.want {
			t.Fatalf("ValidHex(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidColors_DiscardsMalformed(t *testing.T) {
	edits := Edits{
		Primary:   strp("notacolor"),
		Secondary: strp("#445566"),
		Accent:    strp("#GGGGGG"),
	}

	out := edits.ValidColors()
	if out.Primary != nil {
		t.Fatalf("expected malformed primary to be discarded")
	}
	if out.Secondary == nil || *out.Secondary != "#445566" {
		t.Fatalf("expected valid secondary to survive")
	}
	if out.Accent != nil {
		t.Fatalf("expected malformed accent to be discarded")
	}
}

func TestResolve_EditOverExistingOverDefault(t *testing.T) {
	site := &models.Site{
		BrandName:    "Acme",
		PrimaryColor: "#112233",
		Headline:     "Stored headline",
	}

	cfg := Resolve(Edits{Headline: strp("New headline")}, site)
	if cfg.Copy.Headline != "New headline" {
		t.Fatalf("edit should win, got %q", cfg.Copy.Headline)
	}
	if cfg.BrandName != "Acme" {
		t.Fatalf("existing value should win over default, got %q", cfg.BrandName)
	}
	if cfg.Colors.Primary != "#112233" {
		t.Fatalf("existing color should win, got %q", cfg.Colors.Primary)
	}
	if cfg.Colors.Secondary != DefaultSecondary {
		t.Fatalf("missing color should default, got %q", cfg.Colors.Secondary)
	}
	if cfg.Copy.CTA != DefaultCTA {
		t.Fatalf("missing cta should default, got %q", cfg.Copy.CTA)
	}
}

func TestResolve_EmptyEditFallsToDefault(t *testing.T) {
	site := &models.Site{Headline: "Stored headline"}
	cfg := Resolve(Edits{Headline: strp("")}, site)
	if cfg.Copy.Headline != DefaultHeadline {
		t.Fatalf("empty edit should resolve to the default literal, got %q", cfg.Copy.Headline)
	}
}

func TestResolve_AllAbsent(t *testing.T) {
	cfg := Resolve(Edits{}, &models.Site{})
	if cfg.BrandName != DefaultBrandName {
		t.Fatalf("brand name default missing: %q", cfg.BrandName)
	}
	if cfg.Colors.Primary != DefaultPrimary || cfg.Colors.Secondary != DefaultSecondary || cfg.Colors.Accent != DefaultAccent {
		t.Fatalf("color defaults missing: %+v", cfg.Colors)
	}
	if cfg.LogoURL != "" || cfg.CTAURL != "" {
		t.Fatalf("absent optional fields should stay empty")
	}
}

func TestResolve_CTAURLNotPersistedButPassedThrough(t *testing.T) {
	cfg := Resolve(Edits{CTAURL: strp("  https://example.com/signup ")}, &models.Site{})
	if cfg.CTAURL != "https://example.com/signup" {
		t.Fatalf("cta url should be trimmed and carried, got %q", cfg.CTAURL)
	}
}
