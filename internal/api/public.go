/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/friendsincode/brandpage/internal/pagecache"
	"github.com/friendsincode/brandpage/internal/sites"
)

// handlePublicPage serves a published page as stored html, no re-render.
// The visit event is fired after the response is committed; analytics can
// never slow down or fail a page view.
func (a *API) handlePublicPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.NotFound(w, r)
		return
	}

	source := r.URL.Query().Get("source")
	if source == "" {
		source = "direct"
	}

	if entry, ok := a.cache.Get(r.Context(), slug); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		_, _ = w.Write([]byte(entry.HTML))
		a.visits.Record(entry.SiteID, source, r.UserAgent())
		return
	}

	site, err := a.sites.PublishedBySlug(r.Context(), slug)
	if errors.Is(err, sites.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Str("slug", slug).Msg("public page lookup failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	a.cache.Set(r.Context(), slug, pagecache.Entry{
		SiteID: site.ID,
		HTML:   site.GeneratedHTML,
		CSS:    site.GeneratedCSS,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	_, _ = w.Write([]byte(site.GeneratedHTML))
	a.visits.Record(site.ID, source, r.UserAgent())
}

// handlePublicSite returns the published site as JSON for embedding
// clients. Drafts are indistinguishable from missing slugs.
func (a *API) handlePublicSite(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	site, err := a.sites.PublishedBySlug(r.Context(), slug)
	if errors.Is(err, sites.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		a.logger.Error().Err(err).Str("slug", slug).Msg("public site lookup failed")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	writeJSON(w, http.StatusOK, site)
}
