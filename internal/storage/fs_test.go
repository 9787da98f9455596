package storage

import (
	"context"
	"testing"
)

func TestFSStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewFSStore(t.TempDir(), "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	if err := store.Put(ctx, "logos/site-1/logo.png", []byte("png-bytes"), "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "logos/site-1/logo.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Fatalf("got %q", got)
	}

	if url := store.URL("logos/site-1/logo.png"); url != "http://localhost:8080/uploads/logos/site-1/logo.png" {
		t.Fatalf("url = %q", url)
	}
}

func TestFSStoreRejectsEmptyKeyAndEscapes(t *testing.T) {
	t.Parallel()

	store, err := NewFSStore(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	if err := store.Put(ctx, "", []byte("x"), ""); err == nil {
		t.Fatalf("empty key must be rejected")
	}

	// Traversal attempts are confined to the root.
	if err := store.Put(ctx, "../../etc/escape", []byte("x"), ""); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Get(ctx, "etc/escape"); err != nil {
		t.Fatalf("cleaned key should resolve inside the root: %v", err)
	}
}
