/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/friendsincode/brandpage/internal/api"
	"github.com/friendsincode/brandpage/internal/assist"
	"github.com/friendsincode/brandpage/internal/config"
	"github.com/friendsincode/brandpage/internal/db"
	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/pagecache"
	"github.com/friendsincode/brandpage/internal/sites"
	"github.com/friendsincode/brandpage/internal/storage"
	"github.com/friendsincode/brandpage/internal/telemetry"
	"github.com/friendsincode/brandpage/internal/version"
	"github.com/friendsincode/brandpage/internal/visits"
)

// Server bundles HTTP and supporting services.
type Server struct {
	cfg           *config.Config
	logger        zerolog.Logger
	router        chi.Router
	httpServer    *http.Server
	metricsServer *http.Server
	closers       []func() error

	db      *gorm.DB
	bus     *events.Bus
	cache   *pagecache.Cache
	store   storage.ObjectStore
	fsStore *storage.FSStore
	sites   *sites.Service
	visits  *visits.Service
	api     *api.API
	updates *version.Checker

	bgCancel context.CancelFunc
	bgWG     sync.WaitGroup
}

// New constructs the server and wires dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(securityHeadersMiddleware)
	router.Use(telemetry.MetricsMiddleware)
	// Skip the per-request timeout for uploads that can legitimately run long.
	router.Use(func(next http.Handler) http.Handler {
		timeout := middleware.Timeout(60 * time.Second)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/v1/uploads/") {
				next.ServeHTTP(w, r)
				return
			}
			timeout(next).ServeHTTP(w, r)
		})
	})

	srv := &Server{
		cfg:    cfg,
		logger: logger,
		router: router,
		bus:    events.NewBus(),
	}

	if err := srv.initDependencies(); err != nil {
		return nil, err
	}

	srv.configureRoutes()
	srv.startBackgroundWorkers()

	addr := fmt.Sprintf("%s:%d", cfg.HTTPBind, cfg.HTTPPort)
	srv.httpServer = &http.Server{
		Addr:              addr,
		Handler:           srv.router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       0,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	return srv, nil
}

func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Published pages are meant to be embedded and shared; the API is not.
		if strings.HasPrefix(r.URL.Path, "/p/") {
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		} else {
			w.Header().Set("X-Frame-Options", "DENY")
		}

		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) initDependencies() error {
	database, err := db.Connect(s.cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(database); err != nil {
		return err
	}
	if err := db.RegisterCallbacks(database); err != nil {
		return err
	}
	s.db = database
	s.DeferClose(func() error { return db.Close(database) })

	s.cache = pagecache.New(pagecache.Config{
		RedisAddr:     s.cfg.RedisAddr,
		RedisPassword: s.cfg.RedisPassword,
		RedisDB:       s.cfg.RedisDB,
		TTL:           s.cfg.PageCacheTTL,
	}, s.logger)
	s.DeferClose(func() error { return s.cache.Close() })

	switch s.cfg.StorageBackend {
	case "s3":
		store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     s.cfg.S3AccessKeyID,
			SecretAccessKey: s.cfg.S3SecretAccessKey,
			Region:          s.cfg.S3Region,
			Bucket:          s.cfg.S3Bucket,
			Endpoint:        s.cfg.S3Endpoint,
			PublicBaseURL:   s.cfg.S3PublicBaseURL,
			UsePathStyle:    s.cfg.S3UsePathStyle,
		}, s.logger)
		if err != nil {
			return fmt.Errorf("initialize s3 storage: %w", err)
		}
		s.store = store
	default:
		fsStore, err := storage.NewFSStore(s.cfg.UploadRoot, s.cfg.BaseURL+"/uploads")
		if err != nil {
			return fmt.Errorf("initialize filesystem storage: %w", err)
		}
		s.store = fsStore
		s.fsStore = fsStore
	}

	s.sites = sites.New(database, s.bus)
	s.visits = visits.New(database, s.bus)

	assistSvc := assist.New(s.cfg)
	if !assistSvc.Enabled() {
		s.logger.Info().Msg("assist has no API key, answering with the canned response")
	}

	s.api = api.New(database, s.cfg, s.sites, s.visits, assistSvc, s.cache, s.store, s.bus, s.logger)
	s.updates = version.NewChecker(s.cfg.UpdateRepo, s.logger)

	return nil
}

func (s *Server) configureRoutes() {
	s.api.Routes(s.router)

	s.router.Get("/api/v1/version", func(w http.ResponseWriter, r *http.Request) {
		info := s.updates.Info()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version":          info.CurrentVersion,
			"latest_version":   info.LatestVersion,
			"update_available": info.UpdateAvailable,
			"release_url":      info.ReleaseURL,
		})
	})

	// Uploaded logos are served directly when the filesystem backend is
	// active; S3 serves its own URLs.
	if s.fsStore != nil {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.fsStore.Root())))
		s.router.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			fileServer.ServeHTTP(w, r)
		})
	}
}

func (s *Server) startBackgroundWorkers() {
	ctx, cancel := context.WithCancel(context.Background())
	s.bgCancel = cancel

	s.visits.Start(ctx)
	s.cache.Subscribe(ctx, s.bus)
	s.updates.Start(ctx)

	s.bgWG.Add(1)
	go func() {
		defer s.bgWG.Done()
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				db.UpdateConnectionMetrics(s.db)
			}
		}
	}()

	if s.cfg.MetricsBind != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", telemetry.Handler())
		s.metricsServer = &http.Server{
			Addr:              s.cfg.MetricsBind,
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		s.bgWG.Add(1)
		go func() {
			defer s.bgWG.Done()
			s.logger.Info().Str("addr", s.cfg.MetricsBind).Msg("metrics server listening")
			if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.Error().Err(err).Msg("metrics server error")
			}
		}()
	}
}

func (s *Server) stopBackgroundWorkers() {
	if s.bgCancel == nil {
		return
	}
	if s.updates != nil {
		s.updates.Stop()
	}
	if s.metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = s.metricsServer.Shutdown(shutdownCtx)
		cancel()
	}
	s.bgCancel()
	s.bgWG.Wait()
	s.bgCancel = nil
}

// HTTPServer exposes the underlying net/http server.
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// Close releases owned resources in reverse order.
func (s *Server) Close() error {
	s.stopBackgroundWorkers()
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// DeferClose registers a cleanup hook.
func (s *Server) DeferClose(fn func() error) {
	s.closers = append(s.closers, fn)
}
