package config

import (
	"sort"
	"sync"
)

// SpecStore owns the loaded declaration model and hands out immutable
// per-configuration views. It replaces scattered per-concern lookup maps
// with a single owned store, so reloading a model is an explicit swap
// rather than piecemeal mutation.
type SpecStore struct {
	mu      sync.RWMutex
	modules map[string]*ModuleManifest
	configs map[string]*CaseSpec
}

// NewSpecStore builds a store over a loaded model. The model's maps are
// copied; the specs themselves are shared and must not be mutated.
func NewSpecStore(model *Model) *SpecStore {
	s := &SpecStore{
		modules: make(map[string]*ModuleManifest, len(model.Modules)),
		configs: make(map[string]*CaseSpec, len(model.Configs)),
	}
	for id, m := range model.Modules {
		s.modules[id] = m
	}
	for name, c := range model.Configs {
		s.configs[name] = c
	}
	return s
}

// Spec returns the configuration with the given name, if declared.
func (s *SpecStore) Spec(name string) (*CaseSpec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.configs[name]
	return spec, ok
}

// ConfigNames returns all declared configuration names in sorted order.
func (s *SpecStore) ConfigNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.configs))
	for name := range s.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Manifest returns the signature manifest for a compute module, if declared.
func (s *SpecStore) Manifest(id string) (*ModuleManifest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.modules[id]
	return m, ok
}
