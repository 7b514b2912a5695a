package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/depgrid/internal/config"
)

// MemoryLoader is a config.Loader serving documents from a map keyed by
// absolute path. It counts how often each path was loaded.
type MemoryLoader struct {
	mu    sync.Mutex
	docs  map[string]*config.Document
	calls map[string]int
}

// NewMemoryLoader returns a loader serving docs. Each document's Path is set
// to its key.
func NewMemoryLoader(docs map[string]*config.Document) *MemoryLoader {
	l := &MemoryLoader{
		docs:  make(map[string]*config.Document, len(docs)),
		calls: make(map[string]int),
	}
	for path, doc := range docs {
		cp := *doc
		cp.Path = path
		l.docs[path] = &cp
	}
	return l
}

// Load implements config.Loader.
func (l *MemoryLoader) Load(_ context.Context, path string) (*config.Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls[path]++
	doc, ok := l.docs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, config.ErrNotFound)
	}
	return doc, nil
}

// Calls returns how many times path was loaded.
func (l *MemoryLoader) Calls(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[path]
}
