/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/telemetry"
)

// DefaultTemplateID is the design used when a requested template id is
// unknown or its renderer fails.
const DefaultTemplateID = "t1"

// Tier records how far down the fallback chain a render had to go.
type Tier string

const (
	// TierSelected means the requested template rendered successfully.
	TierSelected Tier = "selected"
	// TierDefault means the request fell back to the default template,
	// either because the id was unknown or the renderer failed.
	TierDefault Tier = "default"
	// TierGeneric means even the default failed and the inline generic
	// document was served.
	TierGeneric Tier = "generic"
)

// Result describes the outcome of a dispatch: which template actually
// produced the page and at which fallback tier.
type Result struct {
	TemplateID string
	Tier       Tier
}

// Info is the catalog entry exposed by the template listing endpoint.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var registry = buildRegistry()

func buildRegistry() map[string]*Template {
	all := []*Template{
		newT1(),
		newT2(),
		newT3(),
		newT4(),
		newT5(),
		newT6(),
		newT7(),
	}
	m := make(map[string]*Template, len(all))
	for _, t := range all {
		m[t.ID] = t
	}
	return m
}

// Get returns the registered template, or nil for an unknown id.
func Get(id string) *Template {
	return registry[id]
}

// List returns the catalog sorted by template id.
func List() []Info {
	out := make([]Info, 0, len(registry))
	for _, t := range registry {
		out = append(out, Info{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Render dispatches to the requested template and degrades through the
// fallback chain instead of surfacing an error: an unknown id renders the
// default template, a renderer failure retries with the default, and a
// default failure serves the inline generic document. It always returns a
// usable page.
func Render(id string, cfg brand.Config) (Page, Result) {
	tier := TierSelected

	t := Get(id)
	if t == nil {
		log.Warn().Str("template", id).Msg("unknown template id, using default")
		t = Get(DefaultTemplateID)
		tier = TierDefault
	}

	page, err := safeRender(t, cfg)
	if err == nil {
		recordTier(tier)
		return page, Result{TemplateID: t.ID, Tier: tier}
	}
	log.Error().Err(err).Str("template", t.ID).Msg("template render failed")

	if t.ID != DefaultTemplateID {
		if page, err = safeRender(Get(DefaultTemplateID), cfg); err == nil {
			recordTier(TierDefault)
			return page, Result{TemplateID: DefaultTemplateID, Tier: TierDefault}
		}
		log.Error().Err(err).Str("template", DefaultTemplateID).Msg("default template render failed")
	}

	recordTier(TierGeneric)
	return renderGeneric(cfg), Result{TemplateID: "generic", Tier: TierGeneric}
}

func recordTier(tier Tier) {
	telemetry.RendersTotal.WithLabelValues(string(tier)).Inc()
}

func safeRender(t *Template, cfg brand.Config) (page Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(t.ID, r)
		}
	}()
	return t.Render(cfg)
}

func recoveredError(id string, r any) error {
	return fmt.Errorf("template %s panicked: %v", id, r)
}

