package signature

import (
	"context"
	"sort"

	"github.com/vk/samcase/internal/caseerr"
	"github.com/vk/samcase/internal/config"
)

// ManifestRegistry is the default Registry implementation, backed by the
// `module` manifest blocks of the loaded declaration files.
type ManifestRegistry struct {
	store *config.SpecStore
}

// NewManifestRegistry creates a registry over a spec store.
func NewManifestRegistry(store *config.SpecStore) *ManifestRegistry {
	return &ManifestRegistry{store: store}
}

// LookupSignature implements Registry.
func (r *ManifestRegistry) LookupSignature(_ context.Context, moduleID string) (Signature, error) {
	manifest, ok := r.store.Manifest(moduleID)
	if !ok {
		return Signature{}, &caseerr.UnknownModuleError{Module: moduleID}
	}
	return Signature{
		Inputs:  sortedCopy(manifest.Inputs),
		Outputs: sortedCopy(manifest.Outputs),
	}, nil
}

func sortedCopy(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
