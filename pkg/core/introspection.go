package core

import (
	"github.com/aretw0/introspection"
)

// NotebookState exposes internal state for observability.
type NotebookState struct {
	Notes       int    `json:"notes"`
	Directories int    `json:"directories"`
	StoreType   string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (nb *Notebook) State() any {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	storeType := "none"
	if nb.store != nil {
		storeType = "store"
		if comp, ok := nb.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return NotebookState{
		Notes:       len(nb.notes),
		Directories: len(nb.dirs),
		StoreType:   storeType,
	}
}

// ComponentType implements introspection.Component.
func (nb *Notebook) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Notebook)(nil)
var _ introspection.Component = (*Notebook)(nil)
