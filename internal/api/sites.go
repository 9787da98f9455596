/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/friendsincode/brandpage/internal/auth"
	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/palette"
	"github.com/friendsincode/brandpage/internal/preview"
	"github.com/friendsincode/brandpage/internal/sites"
	"github.com/friendsincode/brandpage/internal/templates"
)

type siteUpdateRequest struct {
	BrandName   *string `json:"brand_name"`
	Description *string `json:"description"`
	Headline    *string `json:"headline"`
	Subheadline *string `json:"subheadline"`
	CTA         *string `json:"cta"`
	LogoURL     *string `json:"logo_url"`
	Primary     *string `json:"primary_color"`
	Secondary   *string `json:"secondary_color"`
	Accent      *string `json:"accent_color"`
	CTAURL      *string `json:"cta_url"`
}

func (r siteUpdateRequest) edits() brand.Edits {
	return brand.Edits{
		BrandName:   r.BrandName,
		Description: r.Description,
		Headline:    r.Headline,
		Subheadline: r.Subheadline,
		CTA:         r.CTA,
		LogoURL:     r.LogoURL,
		Primary:     r.Primary,
		Secondary:   r.Secondary,
		Accent:      r.Accent,
		CTAURL:      r.CTAURL,
	}
}

func (a *API) handleSitesCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req sites.GenerateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.BrandName == "" {
		writeError(w, http.StatusBadRequest, "brand_name_required")
		return
	}

	site, err := a.sites.Generate(r.Context(), claims.UserID, req)
	if err != nil {
		a.logger.Error().Err(err).Msg("site generate failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusCreated, site)
}

func (a *API) handleSitesList(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := a.sites.List(r.Context(), claims.UserID)
	if err != nil {
		a.logger.Error().Err(err).Msg("list sites failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sites": list})
}

func (a *API) handleSitesGet(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	site, err := a.sites.Get(r.Context(), claims.UserID, chi.URLParam(r, "siteID"))
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("get site failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusOK, site)
}

func (a *API) handleSitesUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req siteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	site, err := a.sites.Update(r.Context(), claims.UserID, chi.URLParam(r, "siteID"), req.edits())
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("update site failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusOK, site)
}

func (a *API) handleSitesDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	err := a.sites.Delete(r.Context(), claims.UserID, chi.URLParam(r, "siteID"))
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("delete site failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleSitesPublish(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	site, err := a.sites.Publish(r.Context(), claims.UserID, chi.URLParam(r, "siteID"))
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("publish site failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusOK, site)
}

// handleSitesPreview patches the stored render with in-flight edits for the
// editor's live preview pane. Nothing is persisted.
func (a *API) handleSitesPreview(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var next preview.Fields
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	site, err := a.sites.Get(r.Context(), claims.UserID, chi.URLParam(r, "siteID"))
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("preview lookup failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	cfg := brand.FromSite(site)
	prev := preview.Fields{
		BrandName:   cfg.BrandName,
		Headline:    cfg.Copy.Headline,
		Subheadline: cfg.Copy.Subheadline,
		CTA:         cfg.Copy.CTA,
		Colors:      cfg.Colors,
	}

	// Omitted fields mean unchanged, not cleared.
	if next.BrandName == "" {
		next.BrandName = prev.BrandName
	}
	if next.Headline == "" {
		next.Headline = prev.Headline
	}
	if next.Subheadline == "" {
		next.Subheadline = prev.Subheadline
	}
	if next.CTA == "" {
		next.CTA = prev.CTA
	}

	html, css := preview.Reconcile(site.GeneratedHTML, site.GeneratedCSS, prev, next)
	writeJSON(w, http.StatusOK, map[string]string{"html": html, "css": css})
}

func (a *API) handleSiteStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	site, err := a.sites.Get(r.Context(), claims.UserID, chi.URLParam(r, "siteID"))
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("stats lookup failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	count, err := a.visits.CountBySite(r.Context(), site.ID)
	if err != nil {
		a.logger.Error().Err(err).Msg("visit count failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"site_id": site.ID, "visits": count})
}

func (a *API) handleTemplatesList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": templates.List()})
}

// handlePaletteExtract accepts either a multipart image or a JSON body with
// a url field. Extraction never fails the request; undecodable input still
// returns the default palette.
func (a *API) handlePaletteExtract(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/") {
		r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxUploadSizeBytes())
		if err := r.ParseMultipartForm(a.cfg.MaxUploadSizeBytes()); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_multipart")
			return
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "image_required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, a.cfg.MaxUploadSizeBytes()))
		if err != nil {
			writeError(w, http.StatusBadRequest, "read_failed")
			return
		}

		colors, err := palette.Decode(data)
		if err != nil {
			a.logger.Debug().Err(err).Msg("palette decode failed, using defaults")
		}
		writeJSON(w, http.StatusOK, colors)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url_or_image_required")
		return
	}

	colors, err := palette.FromURL(r.Context(), nil, req.URL)
	if err != nil {
		a.logger.Debug().Err(err).Str("url", req.URL).Msg("palette fetch failed, using defaults")
	}
	writeJSON(w, http.StatusOK, colors)
}

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

func (a *API) handleLogoUpload(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.ClaimsFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxUploadSizeBytes())
	if err := r.ParseMultipartForm(a.cfg.MaxUploadSizeBytes()); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_multipart")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file_required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read_failed")
		return
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := logoExtensions[contentType]
	if !ok {
		contentType = http.DetectContentType(data)
		if ext, ok = logoExtensions[contentType]; !ok {
			ext = path.Ext(header.Filename)
			if ext == "" {
				writeError(w, http.StatusBadRequest, "unsupported_image_type")
				return
			}
		}
	}

	key := "logos/" + uuid.NewString() + ext
	if err := a.store.Put(r.Context(), key, data, contentType); err != nil {
		a.logger.Error().Err(err).Str("key", key).Msg("logo store failed")
		writeError(w, http.StatusInternalServerError, "store_failed")
		return
	}

	url := a.store.URL(key)
	a.bus.Publish(events.EventLogoUploaded, events.Payload{"key": key, "url": url})

	writeJSON(w, http.StatusCreated, map[string]string{"url": url, "key": key})
}
