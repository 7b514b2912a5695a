package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned (wrapped) by loaders when no document exists at a path.
var ErrNotFound = errors.New("configuration not found")

// LoadError reports a document in a preset chain that could not be loaded.
// It aborts resolution of the whole chain.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load configuration %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// CycleError reports a preset chain that refers back to a document already
// being resolved. Chain lists the paths in visiting order, ending with the
// repeated one.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "preset cycle detected: " + strings.Join(e.Chain, " -> ")
}
