// Package storage provides the pluggable backends that durably hold
// uploaded bytes and answer listing queries. Swap implementations by
// changing which concrete type is constructed at startup; handlers only
// see the media.Backend contract.
package storage

import (
	"context"

	"github.com/abduss/mediarepo/internal/media"
)

// Backend is the full contract a storage implementation satisfies. It is a
// superset of media.Backend: Ping exists for readiness checks only.
type Backend interface {
	media.Backend
	Ping(ctx context.Context) error
}

var (
	_ Backend = (*Local)(nil)
	_ Backend = (*MinIO)(nil)
)
