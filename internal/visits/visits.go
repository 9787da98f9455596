/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package visits records public page views. Recording goes through the
// event bus and a background writer, so serving a page never waits on the
// analytics insert and an insert failure never breaks the page response.
package visits

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/models"
	"github.com/friendsincode/brandpage/internal/telemetry"
)

// Service consumes visit events and owns the visits table.
type Service struct {
	db  *gorm.DB
	bus *events.Bus
}

// New creates a visit service.
func New(database *gorm.DB, bus *events.Bus) *Service {
	return &Service{db: database, bus: bus}
}

// Record publishes a visit event. Fire and forget.
func (s *Service) Record(siteID, source, userAgent string) {
	s.bus.Publish(events.EventVisitRecorded, events.Payload{
		"site_id":    siteID,
		"source":     source,
		"user_agent": userAgent,
	})
}

// Start runs the background writer until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	sub := s.bus.Subscribe(events.EventVisitRecorded)
	go func() {
		defer s.bus.Unsubscribe(events.EventVisitRecorded, sub)
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-sub:
				if !ok {
					return
				}
				s.insert(payload)
			}
		}
	}()
}

func (s *Service) insert(payload events.Payload) {
	siteID, _ := payload["site_id"].(string)
	if siteID == "" {
		return
	}
	source, _ := payload["source"].(string)
	userAgent, _ := payload["user_agent"].(string)

	visit := models.Visit{
		ID:        uuid.NewString(),
		SiteID:    siteID,
		Source:    source,
		UserAgent: userAgent,
	}
	if err := s.db.Create(&visit).Error; err != nil {
		log.Warn().Err(err).Str("site_id", siteID).Msg("visit insert failed")
		return
	}
	telemetry.VisitsRecorded.Inc()
}

// CountBySite returns the total recorded visits for one site.
func (s *Service) CountBySite(ctx context.Context, siteID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("site_id = ?", siteID).
		Count(&n).Error
	return n, err
}
