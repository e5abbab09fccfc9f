package config

import "context"

// Loader is the interface for a format-specific declaration loader. Load
// reads every declaration file reachable from the given paths, translates
// them into the format-agnostic model, and merges them into a single Model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
