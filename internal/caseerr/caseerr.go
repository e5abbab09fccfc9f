// Package caseerr defines the typed failure modes of case resolution.
//
// Every error carries the full identifying context (configuration name plus
// the offending variable, module, or producer identifiers) so that a failed
// resolution is diagnosable from the error alone. Callers match on the
// concrete types with errors.As; none of these are ever recovered from
// silently, and a configuration that fails resolution produces no partial
// result.
package caseerr

import (
	"fmt"
	"strings"
)

// UnknownConfigError reports a resolve of a configuration name that was
// never declared.
type UnknownConfigError struct {
	Config string
}

func (e *UnknownConfigError) Error() string {
	return fmt.Sprintf("unknown configuration %q", e.Config)
}

// UnknownVariableError reports a reference to a variable that is neither
// declared on any UI form nor produced, or a secondary module declaration
// naming a variable absent from the module's signature. Module is empty in
// the former case.
type UnknownVariableError struct {
	Config   string
	Variable string
	Module   string
}

func (e *UnknownVariableError) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("config %q: variable %q is not part of the signature of module %q", e.Config, e.Variable, e.Module)
	}
	return fmt.Sprintf("config %q: variable %q is not declared on any ui form", e.Config, e.Variable)
}

// UnknownModuleError reports a compute-module identifier the module registry
// has no signature for. Config is empty when the lookup did not originate
// from a configuration.
type UnknownModuleError struct {
	Config string
	Module string
}

func (e *UnknownModuleError) Error() string {
	if e.Config != "" {
		return fmt.Sprintf("config %q: unknown compute module %q", e.Config, e.Module)
	}
	return fmt.Sprintf("unknown compute module %q", e.Module)
}

// SchemaConflictError reports the same variable name declared with
// incompatible value tags on two forms of one configuration.
type SchemaConflictError struct {
	Config   string
	Variable string
	FormA    string
	FormB    string
	TagA     string
	TagB     string
}

func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("config %q: variable %q declared as %q on form %q but %q on form %q",
		e.Config, e.Variable, e.TagA, e.FormA, e.TagB, e.FormB)
}

// DuplicateProducerError reports two producers claiming the same output
// variable within one configuration.
type DuplicateProducerError struct {
	Config   string
	Variable string
	First    string
	Second   string
}

func (e *DuplicateProducerError) Error() string {
	return fmt.Sprintf("config %q: variable %q is produced by both %q and %q",
		e.Config, e.Variable, e.First, e.Second)
}

// CyclicDependencyError reports a producer dependency graph with no valid
// evaluation order. Cycle holds the full ordered cycle, first producer
// repeated at neither end.
type CyclicDependencyError struct {
	Config string
	Cycle  []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("config %q: cyclic dependency between producers: %s",
		e.Config, strings.Join(e.Cycle, " -> "))
}
