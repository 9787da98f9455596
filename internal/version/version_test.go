package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"0.3.1", "0.3.1", 0},
		{"0.3.1", "0.3.2", -1},
		{"0.3.1", "0.4.0", -1},
		{"1.0.0", "0.9.9", 1},
		{"v1.2.3", "1.2.3", 0},
		{"1.2", "1.2.0", 0},
		{"not-a-version", "0.0.1", -1},
	}
	for _, tc := range cases {
		if got := compareVersions(tc.a, tc.b); got != tc.want {
			t.Fatalf("compareVersions(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCheckerDisabledWithoutRepo(t *testing.T) {
	t.Parallel()

	c := NewChecker("", zerolog.Nop())
	if c.Enabled() {
		t.Fatalf("checker with no repo should be disabled")
	}

	// Start must not poll anything when disabled.
	c.Start(context.Background())
	c.Stop()

	info := c.Info()
	if info.CurrentVersion != Version {
		t.Fatalf("current version = %q, want %q", info.CurrentVersion, Version)
	}
	if info.UpdateAvailable || info.LatestVersion != "" {
		t.Fatalf("disabled checker should never report an update: %+v", info)
	}
}

func TestCheckerDetectsNewerRelease(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/friendsincode/brandpage/releases/latest" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v99.0.0","html_url":"https://example.com/rel/v99.0.0"}`))
	}))
	defer srv.Close()

	c := NewChecker("friendsincode/brandpage", zerolog.Nop())
	c.baseURL = srv.URL
	c.check(context.Background())

	info := c.Info()
	if !info.UpdateAvailable {
		t.Fatalf("expected an available update, got %+v", info)
	}
	if info.LatestVersion != "99.0.0" {
		t.Fatalf("latest = %q, want 99.0.0", info.LatestVersion)
	}
	if info.ReleaseURL != "https://example.com/rel/v99.0.0" {
		t.Fatalf("release url = %q", info.ReleaseURL)
	}
}

func TestCheckerKeepsLastInfoOnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewChecker("friendsincode/brandpage", zerolog.Nop())
	c.baseURL = srv.URL
	c.check(context.Background())

	info := c.Info()
	if info.UpdateAvailable || info.LatestVersion != "" {
		t.Fatalf("failed check should leave info untouched: %+v", info)
	}
	if info.CurrentVersion != Version {
		t.Fatalf("current version = %q, want %q", info.CurrentVersion, Version)
	}
}
