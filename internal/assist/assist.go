/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package assist proxies brand-editing chat to an OpenAI-compatible
// completion endpoint and mines the reply for applicable field changes.
// It degrades to a canned response when no API key is configured; the
// editor's manual controls remain the source of truth either way.
package assist

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/config"
)

const (
	unavailableMessage = "I'm currently unavailable. Please try the manual editing options above."
	troubleMessage     = "I'm having trouble right now. Please try the manual editing options above."
	emptyReplyMessage  = "I couldn't process that request."
)

// Content is the page copy shown to the model as editing context.
type Content struct {
	BrandName   string `json:"brand_name"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTA         string `json:"cta"`
}

// Request is one user turn plus the current state of the site being edited.
type Request struct {
	Message    string       `json:"message"`
	SiteID     string       `json:"site_id,omitempty"`
	TemplateID string       `json:"template_id"`
	Colors     brand.Colors `json:"colors"`
	Content    Content      `json:"content"`
}

// ContentChanges carries suggested copy edits. Empty fields mean no
// suggestion; the editor applies only what is present.
type ContentChanges struct {
	Headline string `json:"headline,omitempty"`
	CTA      string `json:"cta,omitempty"`
}

// Changes is the actionable subset extracted from a model reply.
type Changes struct {
	Colors  *brand.Colors   `json:"colors,omitempty"`
	Content *ContentChanges `json:"content,omitempty"`
}

// Response is the assist response returned to the editor. Changes is nil
// when nothing actionable was found; Message is always set.
type Response struct {
	Message string   `json:"message"`
	Changes *Changes `json:"changes"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Service talks to the configured completion endpoint. The zero value is
// a disabled service that answers every request with unavailableMessage.
type Service struct {
	client *resty.Client
	model  string
}

// New builds a Service from configuration. Without an API key the
// returned service is disabled rather than nil.
func New(cfg *config.Config) *Service {
	if !cfg.AssistConfigured() {
		return &Service{}
	}
	client := resty.New().
		SetBaseURL(cfg.AssistBaseURL).
		SetAuthToken(cfg.AssistAPIKey).
		SetTimeout(cfg.AssistTimeout).
		SetHeader("Content-Type", "application/json")
	return &Service{client: client, model: cfg.AssistModel}
}

// Enabled reports whether the service has an upstream to call.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Suggest sends one turn to the model and returns its reply with any
// extracted changes. Upstream failures are reported in the Response message,
// never as an error; assist is advisory and must not break the editor.
func (s *Service) Suggest(ctx context.Context, req Request) Response {
	if !s.Enabled() {
		return Response{Message: unavailableMessage}
	}

	body := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req)},
			{Role: "user", Content: req.Message},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	var out chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		log.Warn().Err(err).Str("site_id", req.SiteID).Msg("assist upstream call failed")
		return Response{Message: troubleMessage}
	}
	if resp.IsError() {
		log.Warn().Int("status", resp.StatusCode()).Str("site_id", req.SiteID).Msg("assist upstream returned error status")
		return Response{Message: troubleMessage}
	}

	answer := emptyReplyMessage
	if len(out.Choices) > 0 && out.Choices[0].Message.Content != "" {
		answer = out.Choices[0].Message.Content
	}

	return Response{
		Message: answer,
		Changes: ParseChanges(req.Message, answer, req.Colors),
	}
}

func systemPrompt(req Request) string {
	return fmt.Sprintf(`You are an AI assistant helping users customize their landing page templates.

Current template: %s
Current colors: Primary: %s, Secondary: %s, Accent: %s
Current content:
- Brand: %s
- Headline: %s
- Subheadline: %s
- CTA: %s

When users ask for changes, provide helpful suggestions and if applicable, return specific changes in this format:
- For color changes, suggest hex color codes
- For content changes, suggest improved text
- Always explain what you're changing and why

Be concise, helpful, and focus on improving conversion and visual appeal.`,
		req.TemplateID,
		req.Colors.Primary, req.Colors.Secondary, req.Colors.Accent,
		req.Content.BrandName,
		req.Content.Headline,
		req.Content.Subheadline,
		req.Content.CTA)
}
