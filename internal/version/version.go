/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package version carries the build identity and an optional check against
// a GitHub repository's latest release. The check is off unless a repo is
// configured, so default deployments never poll anything.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Version is set at build time via ldflags:
//
//	-X github.com/friendsincode/brandpage/internal/version.Version=X.Y.Z
var Version = "0.3.1"

// UpdateInfo is the payload served by the version endpoint.
type UpdateInfo struct {
	CurrentVersion  string    `json:"current_version"`
	LatestVersion   string    `json:"latest_version,omitempty"`
	UpdateAvailable bool      `json:"update_available"`
	ReleaseURL      string    `json:"release_url,omitempty"`
	CheckedAt       time.Time `json:"checked_at,omitempty"`
}

// Checker polls the configured repository's latest release. A Checker with
// an empty repo is disabled: Start does nothing and Info reports only the
// running version.
type Checker struct {
	mu         sync.RWMutex
	info       UpdateInfo
	repo       string
	baseURL    string
	logger     zerolog.Logger
	interval   time.Duration
	httpClient *http.Client
	cancel     context.CancelFunc
}

// NewChecker builds a checker for the given "owner/name" repo. Empty repo
// means no update checking.
func NewChecker(repo string, logger zerolog.Logger) *Checker {
	return &Checker{
		repo:       repo,
		baseURL:    "https://api.github.com",
		logger:     logger.With().Str("component", "update-checker").Logger(),
		interval:   24 * time.Hour,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		info:       UpdateInfo{CurrentVersion: Version},
	}
}

// Enabled reports whether a release source is configured.
func (c *Checker) Enabled() bool {
	return c.repo != ""
}

// Start checks once immediately and then on the checker's interval.
func (c *Checker) Start(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)

	c.check(ctx)

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.check(ctx)
			}
		}
	}()
}

func (c *Checker) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Info returns the most recent check result.
func (c *Checker) Info() UpdateInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.info
}

func (c *Checker) check(ctx context.Context) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Debug().Err(err).Msg("build release request")
		return
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "Brandpage/"+Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("fetch latest release")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().Int("status", resp.StatusCode).Msg("unexpected release status")
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		c.logger.Debug().Err(err).Msg("decode release")
		return
	}

	latest := strings.TrimPrefix(release.TagName, "v")

	c.mu.Lock()
	c.info = UpdateInfo{
		CurrentVersion:  Version,
		LatestVersion:   latest,
		UpdateAvailable: compareVersions(Version, latest) < 0,
		ReleaseURL:      release.HTMLURL,
		CheckedAt:       time.Now(),
	}
	updateAvailable := c.info.UpdateAvailable
	c.mu.Unlock()

	if updateAvailable {
		c.logger.Info().
			Str("current", Version).
			Str("latest", latest).
			Str("url", release.HTMLURL).
			Msg("new version available")
	}
}

// compareVersions orders two dotted versions: -1 when a < b, 0 when equal,
// 1 when a > b. Missing components count as zero.
func compareVersions(a, b string) int {
	ap, bp := parseVersion(a), parseVersion(b)
	for i := 0; i < 3; i++ {
		if ap[i] != bp[i] {
			if ap[i] < bp[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func parseVersion(v string) [3]int {
	parts := strings.Split(strings.TrimPrefix(v, "v"), ".")

	var out [3]int
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}
