// Package signature provides compute-module signatures: the declared input
// and output names of each module, looked up from a registry and cached
// for the process lifetime.
package signature

import (
	"context"
	"sort"
)

// Signature is a compute module's declared interface. Inputs and Outputs
// are name-sorted and must be treated as read-only.
type Signature struct {
	Inputs  []string
	Outputs []string
}

// HasInput reports whether the module accepts the named input.
func (s Signature) HasInput(name string) bool {
	return contains(s.Inputs, name)
}

// HasOutput reports whether the module yields the named output.
func (s Signature) HasOutput(name string) bool {
	return contains(s.Outputs, name)
}

func contains(sorted []string, name string) bool {
	i := sort.SearchStrings(sorted, name)
	return i < len(sorted) && sorted[i] == name
}

// Registry is the external module registry collaborator. Lookups fail with
// caseerr.UnknownModuleError when the registry has no such identifier.
type Registry interface {
	LookupSignature(ctx context.Context, moduleID string) (Signature, error)
}
