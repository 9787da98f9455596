/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package sites implements the site lifecycle: generation from a template,
// owner-scoped reads and edits, atomic re-render on save, and the one-way
// publish transition.
package sites

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/models"
	"github.com/friendsincode/brandpage/internal/telemetry"
	"github.com/friendsincode/brandpage/internal/templates"
)

// ErrNotFound covers both a missing record and a record the caller does
// not own; the two are indistinguishable on purpose.
var ErrNotFound = errors.New("site not found")

// Service owns all site persistence and rendering flows.
type Service struct {
	db  *gorm.DB
	bus *events.Bus
}

// New creates a site service.
func New(database *gorm.DB, bus *events.Bus) *Service {
	return &Service{db: database, bus: bus}
}

// GenerateInput is the create payload. Color values that fail validation
// are silently discarded, not rejected.
type GenerateInput struct {
	TemplateID  string       `json:"template_id"`
	BrandName   string       `json:"brand_name"`
	Description string       `json:"description"`
	Industry    string       `json:"industry"`
	Headline    string       `json:"headline"`
	Subheadline string       `json:"subheadline"`
	CTA         string       `json:"cta"`
	LogoURL     string       `json:"logo_url"`
	Colors      brand.Colors `json:"colors"`
	CTAURL      string       `json:"cta_url"`
}

// EnsureOrganization returns the user's organization, creating one on
// first use. Every user owns exactly one organization in this model.
func (s *Service) EnsureOrganization(ctx context.Context, userID, name string) (*models.Organization, error) {
	var org models.Organization
	err := s.db.WithContext(ctx).Where("owner_user_id = ?", userID).First(&org).Error
	if err == nil {
		return &org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	org = models.Organization{
		ID:          uuid.NewString(),
		Name:        name,
		OwnerUserID: userID,
	}
	if err := s.db.WithContext(ctx).Create(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// Generate creates a draft site and renders its first page.
func (s *Service) Generate(ctx context.Context, userID string, in GenerateInput) (*models.Site, error) {
	org, err := s.EnsureOrganization(ctx, userID, in.BrandName)
	if err != nil {
		return nil, err
	}

	templateID := in.TemplateID
	if templateID == "" {
		templateID = templates.DefaultTemplateID
	}

	site := &models.Site{
		ID:          uuid.NewString(),
		Slug:        makeSlug(in.BrandName),
		OrgID:       org.ID,
		TemplateID:  templateID,
		BrandName:   in.BrandName,
		Description: in.Description,
		Industry:    in.Industry,
		Headline:    in.Headline,
		Subheadline: in.Subheadline,
		CTA:         in.CTA,
		LogoURL:     in.LogoURL,
		Status:      models.SiteDraft,
	}
	if brand.ValidHex(in.Colors.Primary) {
		site.PrimaryColor = in.Colors.Primary
	}
	if brand.ValidHex(in.Colors.Secondary) {
		site.SecondaryColor = in.Colors.Secondary
	}
	if brand.ValidHex(in.Colors.Accent) {
		site.AccentColor = in.Colors.Accent
	}

	cfg := brand.FromSite(site)
	cfg.CTAURL = in.CTAURL
	page, result := s.render(site.TemplateID, cfg)
	site.GeneratedHTML = page.HTML
	site.GeneratedCSS = page.CSS

	if err := s.db.WithContext(ctx).Create(site).Error; err != nil {
		return nil, err
	}

	log.Info().
		Str("site_id", site.ID).
		Str("slug", site.Slug).
		Str("template", result.TemplateID).
		Msg("site generated")
	s.bus.Publish(events.EventSiteCreated, events.Payload{"site_id": site.ID, "slug": site.Slug})

	return site, nil
}

// Get returns an owner-scoped site.
func (s *Service) Get(ctx context.Context, userID, siteID string) (*models.Site, error) {
	return s.owned(ctx, userID, siteID)
}

// List returns the user's sites, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.Site, error) {
	var out []models.Site
	err := s.db.WithContext(ctx).
		Joins("JOIN organizations ON organizations.id = sites.org_id").
		Where("organizations.owner_user_id = ?", userID).
		Order("sites.created_at DESC").
		Find(&out).Error
	return out, err
}

// Update applies a partial edit set, re-renders, and persists the changed
// fields together with the fresh render in one transaction. Malformed
// colors are dropped before they reach the record; a renderer failure
// degrades through the fallback chain instead of failing the save.
func (s *Service) Update(ctx context.Context, userID, siteID string, edits brand.Edits) (*models.Site, error) {
	site, err := s.owned(ctx, userID, siteID)
	if err != nil {
		return nil, err
	}

	edits = edits.ValidColors()
	applyEdits(site, edits)

	cfg := brand.Resolve(edits, site)
	page, result := s.render(site.TemplateID, cfg)
	site.GeneratedHTML = page.HTML
	site.GeneratedCSS = page.CSS

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(site).Error
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("site_id", site.ID).
		Str("template", result.TemplateID).
		Str("tier", string(result.Tier)).
		Msg("site updated")
	s.bus.Publish(events.EventSiteUpdated, events.Payload{"site_id": site.ID, "slug": site.Slug})

	return site, nil
}

// Publish flips a draft to published. The transition is one-way; calling
// it on a published site is a no-op success.
func (s *Service) Publish(ctx context.Context, userID, siteID string) (*models.Site, error) {
	site, err := s.owned(ctx, userID, siteID)
	if err != nil {
		return nil, err
	}

	if site.IsPublished() {
		return site, nil
	}

	site.Status = models.SitePublished
	if err := s.db.WithContext(ctx).Model(site).Update("status", models.SitePublished).Error; err != nil {
		return nil, err
	}

	log.Info().Str("site_id", site.ID).Str("slug", site.Slug).Msg("site published")
	s.bus.Publish(events.EventSitePublished, events.Payload{"site_id": site.ID, "slug": site.Slug})

	return site, nil
}

// Delete removes a site outright. Published pages disappear with it; the
// cache invalidation rides on the event.
func (s *Service) Delete(ctx context.Context, userID, siteID string) error {
	site, err := s.owned(ctx, userID, siteID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(site).Error; err != nil {
		return err
	}

	log.Info().Str("site_id", site.ID).Str("slug", site.Slug).Msg("site deleted")
	s.bus.Publish(events.EventSiteDeleted, events.Payload{"site_id": site.ID, "slug": site.Slug})

	return nil
}

// PublishedBySlug looks up a published site for public serving. Drafts are
// never retrievable here, even when the slug exists.
func (s *Service) PublishedBySlug(ctx context.Context, slug string) (*models.Site, error) {
	var site models.Site
	err := s.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.SitePublished).
		First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Service) owned(ctx context.Context, userID, siteID string) (*models.Site, error) {
	var site models.Site
	err := s.db.WithContext(ctx).
		Joins("JOIN organizations ON organizations.id = sites.org_id").
		Where("sites.id = ? AND organizations.owner_user_id = ?", siteID, userID).
		First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Service) render(templateID string, cfg brand.Config) (templates.Page, templates.Result) {
	start := time.Now()
	page, result := templates.Render(templateID, cfg)
	telemetry.RenderDuration.WithLabelValues(result.TemplateID).Observe(time.Since(start).Seconds())
	return page, result
}

func applyEdits(site *models.Site, edits brand.Edits) {
	if edits.BrandName != nil {
		site.BrandName = *edits.BrandName
	}
	if edits.Description != nil {
		site.Description = *edits.Description
	}
	if edits.Headline != nil {
		site.Headline = *edits.Headline
	}
	if edits.Subheadline != nil {
		site.Subheadline = *edits.Subheadline
	}
	if edits.CTA != nil {
		site.CTA = *edits.CTA
	}
	if edits.LogoURL != nil {
		site.LogoURL = *edits.LogoURL
	}
	if edits.Primary != nil {
		site.PrimaryColor = *edits.Primary
	}
	if edits.Secondary != nil {
		site.SecondaryColor = *edits.Secondary
	}
	if edits.Accent != nil {
		site.AccentColor = *edits.Accent
	}
}
