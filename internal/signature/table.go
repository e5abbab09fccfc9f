package signature

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vk/samcase/internal/ctxlog"
)

// tableCacheSize bounds the signature cache. The module population is
// static and small in practice, so this is effectively process-lifetime
// retention.
const tableCacheSize = 1024

// Table is the Module Signature Table: a concurrency-safe, insert-if-absent
// cache in front of any Registry. Concurrent lookups of the same module may
// each hit the registry; the first writer wins and losing results are
// discarded, never an error. Failed lookups are not cached so that a
// registry fixed at runtime can be retried.
type Table struct {
	registry Registry
	cache    *lru.Cache[string, Signature]
}

// NewTable wraps a registry with a signature cache.
func NewTable(registry Registry) (*Table, error) {
	cache, err := lru.New[string, Signature](tableCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature cache: %w", err)
	}
	return &Table{registry: registry, cache: cache}, nil
}

// Signature returns the cached signature of a module, querying the backing
// registry on a miss.
func (t *Table) Signature(ctx context.Context, moduleID string) (Signature, error) {
	if sig, ok := t.cache.Get(moduleID); ok {
		return sig, nil
	}

	sig, err := t.registry.LookupSignature(ctx, moduleID)
	if err != nil {
		return Signature{}, err
	}

	if previous, raced, _ := t.cache.PeekOrAdd(moduleID, sig); raced {
		// Another goroutine cached this module first; use its result.
		ctxlog.FromContext(ctx).Debug("Discarding duplicate signature lookup.", "module", moduleID)
		return previous, nil
	}
	return sig, nil
}
