package pagecache

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestDisabledCacheIsSafe(t *testing.T) {
	t.Parallel()

	c := New(Config{}, zerolog.Nop())
	if c.Available() {
		t.Fatalf("cache without redis must start disabled")
	}

	ctx := context.Background()
	c.Set(ctx, "some-slug", Entry{HTML: "<html>", CSS: "body{}"})
	if _, ok := c.Get(ctx, "some-slug"); ok {
		t.Fatalf("disabled cache must always miss")
	}
	c.Invalidate(ctx, "some-slug")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
