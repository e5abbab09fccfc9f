// Package hcl is the HCL implementation of config.Loader. It discovers
// declaration files, parses them, and translates the schema structs into
// the format-agnostic config model.
package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/ctxlog"
	"github.com/vk/samcase/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire loading process. It is agnostic to the
// origin of the paths and accepts any mix of files and directories.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Modules: make(map[string]*config.ModuleManifest),
		Configs: make(map[string]*config.CaseSpec),
	}

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.FileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, mod := range root.Modules {
			manifest := translateModule(mod)
			if _, exists := model.Modules[manifest.ID]; exists {
				return nil, fmt.Errorf("%s: duplicate module manifest %q", file, manifest.ID)
			}
			model.Modules[manifest.ID] = manifest
		}
		for _, cfg := range root.Configs {
			spec, err := l.translateConfig(ctx, cfg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			if _, exists := model.Configs[spec.Name]; exists {
				return nil, fmt.Errorf("%s: duplicate configuration %q", file, spec.Name)
			}
			model.Configs[spec.Name] = spec
		}
	}

	logger.Debug("HCL loading complete.", "modules", len(model.Modules), "configs", len(model.Configs))
	return model, nil
}

// findAllHCLFiles walks all given paths and returns a flat, deduplicated
// list of .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("declaration path %s does not exist", path)
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
