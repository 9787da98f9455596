package sites

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/models"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&models.User{}, &models.Organization{}, &models.Site{}, &models.Visit{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	userID := uuid.NewString()
	user := models.User{ID: userID, Email: "owner@example.com", Password: "x"}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return New(database, events.NewBus()), userID
}

func str(s string) *string { return &s }

func TestGenerateCreatesDraftWithRender(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	site, err := svc.Generate(ctx, userID, GenerateInput{
		TemplateID: "t2",
		BrandName:  "Blue Bottle Labs",
		Headline:   "Brew Better",
		Colors:     brand.Colors{Primary: "#123456", Secondary: "bogus", Accent: "#ABCDEF"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if site.Status != models.SiteDraft {
		t.Fatalf("status = %q, want draft", site.Status)
	}
	if !strings.HasPrefix(site.Slug, "blue-bottle-labs-") {
		t.Fatalf("slug = %q", site.Slug)
	}
	if site.PrimaryColor != "#123456" || site.AccentColor != "#ABCDEF" {
		t.Fatalf("valid colors not persisted: %+v", site)
	}
	if site.SecondaryColor != "" {
		t.Fatalf("malformed secondary should be discarded, got %q", site.SecondaryColor)
	}
	if !strings.Contains(site.GeneratedHTML, "Brew Better") {
		t.Fatalf("render missing headline")
	}
	if !strings.Contains(site.GeneratedCSS, "--brand-primary: #123456;") {
		t.Fatalf("render missing brand color")
	}
}

func TestGenerateSlugsNeverCollide(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	a, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "Same Name"})
	if err != nil {
		t.Fatalf("generate a: %v", err)
	}
	b, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "Same Name"})
	if err != nil {
		t.Fatalf("generate b: %v", err)
	}
	if a.Slug == b.Slug {
		t.Fatalf("slugs collided: %q", a.Slug)
	}
}

func TestUpdateDiscardsMalformedColorAndKeepsPrevious(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	site, err := svc.Generate(ctx, userID, GenerateInput{
		BrandName: "Acme",
		Colors:    brand.Colors{Primary: "#3B82F6"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	updated, err := svc.Update(ctx, userID, site.ID, brand.Edits{
		Primary:  str("#ZZZZZZ"),
		Headline: str("New Headline"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.PrimaryColor != "#3B82F6" {
		t.Fatalf("primary = %q, want previous value retained", updated.PrimaryColor)
	}
	if updated.Headline != "New Headline" {
		t.Fatalf("headline not persisted")
	}
	if !strings.Contains(updated.GeneratedHTML, "New Headline") {
		t.Fatalf("regenerated html missing new headline")
	}
	if !strings.Contains(updated.GeneratedCSS, "--brand-primary: #3B82F6;") {
		t.Fatalf("regenerated css lost retained color")
	}
}

func TestUpdateEmptyHeadlineRendersDefault(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	site, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "Acme", Headline: "Custom"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	updated, err := svc.Update(ctx, userID, site.ID, brand.Edits{Headline: str("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(updated.GeneratedHTML, brand.DefaultHeadline) {
		t.Fatalf("empty headline edit should render the default literal")
	}
}

func TestUpdateUnknownTemplateFallsBackWithoutFailing(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	site, err := svc.Generate(ctx, userID, GenerateInput{TemplateID: "t9", BrandName: "Acme"})
	if err != nil {
		t.Fatalf("generate with unknown template: %v", err)
	}
	if site.GeneratedHTML == "" {
		t.Fatalf("fallback render missing")
	}

	if _, err := svc.Update(ctx, userID, site.ID, brand.Edits{CTA: str("Go")}); err != nil {
		t.Fatalf("update with unknown template: %v", err)
	}
}

func TestOwnershipScoping(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	site, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "Mine"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	intruder := uuid.NewString()
	if _, err := svc.Get(ctx, intruder, site.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get by non-owner: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(ctx, intruder, site.ID, brand.Edits{CTA: str("Steal")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update by non-owner: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Publish(ctx, intruder, site.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("publish by non-owner: err = %v, want ErrNotFound", err)
	}
}

func TestPublishLifecycle(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	site, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "Launchable"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Drafts are invisible publicly, including by their real slug.
	if _, err := svc.PublishedBySlug(ctx, site.Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft served publicly: err = %v", err)
	}

	published, err := svc.Publish(ctx, userID, site.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.Status != models.SitePublished {
		t.Fatalf("status = %q", published.Status)
	}

	got, err := svc.PublishedBySlug(ctx, site.Slug)
	if err != nil {
		t.Fatalf("published lookup: %v", err)
	}
	if got.GeneratedHTML != site.GeneratedHTML {
		t.Fatalf("public serving must return the persisted render verbatim")
	}

	// Publishing again is a no-op success.
	if _, err := svc.Publish(ctx, userID, site.ID); err != nil {
		t.Fatalf("re-publish: %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()
	svc, userID := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "First"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Generate(ctx, userID, GenerateInput{BrandName: "Second"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	list, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}
