/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import (
	"time"
)

// User represents an authenticated account.
type User struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Password  string `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Organization owns sites. Every site belongs to exactly one organization
// and an organization has exactly one owner user.
type Organization struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `gorm:"type:uuid;index" json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SiteStatus tracks the publish lifecycle of a site.
type SiteStatus string

const (
	SiteDraft     SiteStatus = "draft"
	SitePublished SiteStatus = "published"
)

// Site is one user-created landing page instance. The generated_html and
// generated_css columns cache the last successful render for the current
// field values; they are rewritten in the same transaction as any brand
// field change so a stale cache never survives a save.
type Site struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug       string `gorm:"uniqueIndex" json:"slug"`
	OrgID      string `gorm:"type:uuid;index" json:"org_id"`
	TemplateID string `gorm:"type:varchar(16)" json:"template_id"`

	BrandName   string `json:"brand_name"`
	Description string `gorm:"type:text" json:"description"`
	Industry    string `json:"industry"`
	Headline    string `json:"headline"`
	Subheadline string `gorm:"type:text" json:"subheadline"`
	CTA         string `json:"cta"`
	LogoURL     string `json:"logo_url"`

	// Always valid 6-hex-digit strings or empty; malformed values are
	// dropped before they reach these columns.
	PrimaryColor   string `gorm:"type:varchar(8)" json:"primary_color"`
	SecondaryColor string `gorm:"type:varchar(8)" json:"secondary_color"`
	AccentColor    string `gorm:"type:varchar(8)" json:"accent_color"`

	GeneratedHTML string `gorm:"type:text" json:"generated_html"`
	GeneratedCSS  string `gorm:"type:text" json:"generated_css"`

	Status    SiteStatus `gorm:"type:varchar(16);default:'draft'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsPublished reports whether the site is exposed at its public slug.
func (s *Site) IsPublished() bool {
	return s.Status == SitePublished
}

// Visit records one public page view. Inserted asynchronously; serving the
// page never waits on it.
type Visit struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SiteID    string    `gorm:"type:uuid;index" json:"site_id"`
	Source    string    `gorm:"type:varchar(64)" json:"source"`
	UserAgent string    `gorm:"type:varchar(512)" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
