package export

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFormat is returned when no writer is registered for a format.
var ErrUnknownFormat = errors.New("export: unknown format")

// WriterFactory creates a new writer instance.
// Factories are registered via Register and called by NewWriter.
type WriterFactory func() Writer

var (
	registryMu sync.RWMutex
	writers    = make(map[string]WriterFactory)
)

// Register makes a writer available under the given format name, which is
// also the file extension Save matches on.
//
// Register panics if factory is nil or if a writer with the same name is
// already registered.
func Register(name string, factory WriterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := writers[name]; dup {
		panic("export: Register called twice for " + name)
	}
	writers[name] = factory
}

// Unregister removes a writer from the registry.
// If the writer is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(writers, name)
}

// NewWriter creates a writer for the named format.
func NewWriter(name string) (Writer, error) {
	registryMu.RLock()
	factory, ok := writers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownFormat, name, Formats())
	}
	return factory(), nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a writer is registered for the format.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := writers[name]
	return ok
}
