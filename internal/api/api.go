/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/friendsincode/brandpage/internal/assist"
	"github.com/friendsincode/brandpage/internal/auth"
	"github.com/friendsincode/brandpage/internal/config"
	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/pagecache"
	"github.com/friendsincode/brandpage/internal/sites"
	"github.com/friendsincode/brandpage/internal/storage"
	"github.com/friendsincode/brandpage/internal/visits"
)

// API exposes HTTP handlers.
type API struct {
	db        *gorm.DB
	cfg       *config.Config
	jwtSecret []byte
	sites     *sites.Service
	visits    *visits.Service
	assist    *assist.Service
	cache     *pagecache.Cache
	store     storage.ObjectStore
	bus       *events.Bus
	logger    zerolog.Logger
}

// New creates the API router wrapper.
func New(db *gorm.DB, cfg *config.Config, sitesSvc *sites.Service, visitsSvc *visits.Service, assistSvc *assist.Service, cache *pagecache.Cache, store storage.ObjectStore, bus *events.Bus, logger zerolog.Logger) *API {
	return &API{
		db:        db,
		cfg:       cfg,
		jwtSecret: []byte(cfg.JWTSigningKey),
		sites:     sitesSvc,
		visits:    visitsSvc,
		assist:    assistSvc,
		cache:     cache,
		store:     store,
		bus:       bus,
		logger:    logger,
	}
}

// Routes mounts API routes on provided router.
func (a *API) Routes(r chi.Router) {
	r.Get("/healthz", a.handleHealth)
	r.Get("/p/{slug}", a.handlePublicPage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", a.handleHealth)

		// Public endpoints (no auth required)
		r.Post("/auth/signup", a.handleSignup)
		r.Post("/auth/login", a.handleLogin)
		r.Get("/sites/public/{slug}", a.handlePublicSite)

		r.Group(func(pr chi.Router) {
			pr.Use(auth.Middleware(a.jwtSecret))

			pr.Route("/sites", func(r chi.Router) {
				r.Get("/", a.handleSitesList)
				r.Post("/", a.handleSitesCreate)
				r.Route("/{siteID}", func(r chi.Router) {
					r.Get("/", a.handleSitesGet)
					r.Put("/", a.handleSitesUpdate)
					r.Delete("/", a.handleSitesDelete)
					r.Post("/publish", a.handleSitesPublish)
					r.Post("/preview", a.handleSitesPreview)
					r.Get("/stats", a.handleSiteStats)
				})
			})

			pr.Get("/templates", a.handleTemplatesList)
			pr.Post("/palette", a.handlePaletteExtract)
			pr.Post("/uploads/logo", a.handleLogoUpload)
			pr.Post("/ai-chat", a.handleAssist)
		})
	})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
