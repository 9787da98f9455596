package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/friendsincode/brandpage/internal/brand"
	"github.com/friendsincode/brandpage/internal/config"
)

func currentColors() brand.Colors {
	return brand.Colors{Primary: "#3B82F6", Secondary: "#6B7280", Accent: "#10B981"}
}

func TestParseChangesColorRequest(t *testing.T) {
	t.Parallel()

	answer := `I'd suggest a deeper blue like "#1E40AF" for the primary and #F59E0B as an accent.`
	changes := ParseChanges("Can you make the colors more blue?", answer, currentColors())
	if changes == nil || changes.Colors == nil {
		t.Fatalf("expected color changes, got %+v", changes)
	}
	if changes.Colors.Primary != "#1E40AF" {
		t.Fatalf("primary = %q, want #1E40AF", changes.Colors.Primary)
	}
	if changes.Colors.Secondary != "#F59E0B" {
		t.Fatalf("secondary = %q, want second hex from answer", changes.Colors.Secondary)
	}
	if changes.Colors.Accent != "#10B981" {
		t.Fatalf("accent = %q, want current accent retained", changes.Colors.Accent)
	}
}

func TestParseChangesColorKeywordWithoutHexes(t *testing.T) {
	t.Parallel()

	changes := ParseChanges("change the color", "Try a warmer tone overall.", currentColors())
	if changes != nil {
		t.Fatalf("no hex codes in answer should yield nil changes, got %+v", changes)
	}
}

func TestParseChangesHeadlineTakesFirstQuote(t *testing.T) {
	t.Parallel()

	answer := `How about "Ship Faster, Worry Less"? It beats "the old one" on clarity.`
	changes := ParseChanges("rewrite my headline", answer, currentColors())
	if changes == nil || changes.Content == nil {
		t.Fatalf("expected content changes, got %+v", changes)
	}
	if changes.Content.Headline != "Ship Faster, Worry Less" {
		t.Fatalf("headline = %q", changes.Content.Headline)
	}
	if changes.Content.CTA != "" {
		t.Fatalf("cta should be empty for a headline request, got %q", changes.Content.CTA)
	}
}

func TestParseChangesCTATakesLastQuote(t *testing.T) {
	t.Parallel()

	answer := `Instead of "Get Started" try "Start Your Free Trial".`
	changes := ParseChanges("improve the button text", answer, currentColors())
	if changes == nil || changes.Content == nil {
		t.Fatalf("expected content changes, got %+v", changes)
	}
	if changes.Content.CTA != "Start Your Free Trial" {
		t.Fatalf("cta = %q", changes.Content.CTA)
	}
}

func TestParseChangesCombinedRequest(t *testing.T) {
	t.Parallel()

	answer := `Use #DC2626 as primary. For the headline try "Bold Moves Only" and label the button "Join Now".`
	changes := ParseChanges("new red color scheme, punchier headline, better cta", answer, currentColors())
	if changes == nil || changes.Colors == nil || changes.Content == nil {
		t.Fatalf("expected colors and content, got %+v", changes)
	}
	if changes.Colors.Primary != "#DC2626" {
		t.Fatalf("primary = %q", changes.Colors.Primary)
	}
	if changes.Content.Headline != "Bold Moves Only" {
		t.Fatalf("headline = %q", changes.Content.Headline)
	}
	if changes.Content.CTA != "Join Now" {
		t.Fatalf("cta = %q", changes.Content.CTA)
	}
}

func TestParseChangesUnrelatedMessage(t *testing.T) {
	t.Parallel()

	changes := ParseChanges("what does this template look like on mobile?", `It adapts via "media queries" and #FF0000 markers.`, currentColors())
	if changes != nil {
		t.Fatalf("unrelated message should yield nil changes, got %+v", changes)
	}
}

func TestChatDisabledService(t *testing.T) {
	t.Parallel()

	svc := New(&config.Config{})
	if svc.Enabled() {
		t.Fatal("service without an API key should be disabled")
	}
	reply := svc.Suggest(context.Background(), Request{Message: "make it blue"})
	if reply.Message != unavailableMessage {
		t.Fatalf("message = %q", reply.Message)
	}
	if reply.Changes != nil {
		t.Fatalf("disabled service should suggest nothing, got %+v", reply.Changes)
	}
}

func TestChatProxiesAndParses(t *testing.T) {
	t.Parallel()

	answer := `A richer blue such as #2563EB would help conversion.`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: answer}}},
		})
	}))
	defer srv.Close()

	svc := New(&config.Config{
		AssistAPIKey:  "test-key",
		AssistBaseURL: srv.URL,
		AssistModel:   "gpt-3.5-turbo",
		AssistTimeout: 5 * time.Second,
	})
	reply := svc.Suggest(context.Background(), Request{
		Message: "make the primary color blue",
		Colors:  currentColors(),
	})
	if reply.Message != answer {
		t.Fatalf("message = %q", reply.Message)
	}
	if reply.Changes == nil || reply.Changes.Colors == nil || reply.Changes.Colors.Primary != "#2563EB" {
		t.Fatalf("changes = %+v", reply.Changes)
	}
}

func TestChatUpstreamErrorIsNonFatal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := New(&config.Config{
		AssistAPIKey:  "test-key",
		AssistBaseURL: srv.URL,
		AssistModel:   "gpt-3.5-turbo",
		AssistTimeout: 5 * time.Second,
	})
	reply := svc.Suggest(context.Background(), Request{Message: "make it blue"})
	if reply.Message != troubleMessage {
		t.Fatalf("message = %q", reply.Message)
	}
	if reply.Changes != nil {
		t.Fatalf("failed call should suggest nothing, got %+v", reply.Changes)
	}
}
