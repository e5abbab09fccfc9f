// Package config defines the format-agnostic declaration model for the
// resolver: configurations with their UI pages and forms, formula and
// secondary-module specs, and compute-module signature manifests, along
// with the Loader interface for format-specific front ends.
//
// The model is the single source of truth for the catalog, classify, plan
// and resolve packages. It is built once by a Loader and never mutated
// afterwards; SpecStore hands out the per-configuration views.
package config
