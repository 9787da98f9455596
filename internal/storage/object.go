/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package storage abstracts where uploaded logos live: the local
// filesystem for single-node deployments, S3-compatible object storage
// otherwise.
package storage

import "context"

// ObjectStore abstracts object storage operations.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	// URL returns the public URL the stored object is served from.
	URL(key string) string
}
