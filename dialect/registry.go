package dialect

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

var ErrUnknownDialect = errors.New("unknown dialect")

var (
	mu     sync.RWMutex
	byName = make(map[string]*Dialect)
	byExt  = make(map[string]*Dialect)
)

// Register adds d to the registry.  Names and extensions must be unique.
func Register(d *Dialect) error {
	if d == nil {
		return fmt.Errorf("cannot register nil dialect")
	}
	if d.Name == "" {
		return fmt.Errorf("dialect must have a name")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byName[d.Name]; exists {
		return fmt.Errorf("dialect %q already registered", d.Name)
	}
	for _, ext := range d.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("dialect %q: extension %q must start with a dot", d.Name, ext)
		}
		if o, exists := byExt[ext]; exists {
			return fmt.Errorf("dialect %q: extension %s already belongs to %q", d.Name, ext, o.Name)
		}
	}
	byName[d.Name] = d
	for _, ext := range d.Extensions {
		byExt[ext] = d
	}
	return nil
}

// Lookup looks up a dialect by name
func Lookup(name string) *Dialect {
	mu.RLock()
	defer mu.RUnlock()
	return byName[name]
}

// Get is like Lookup but reports a missing dialect as an error.
func Get(name string) (*Dialect, error) {
	if d := Lookup(name); d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownDialect, name, strings.Join(Names(), ", "))
}

// ForPath returns the dialect of a file by its extension, or nil.
func ForPath(path string) *Dialect {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	if d := byExt[ext]; d != nil {
		return d
	}
	return byExt[strings.ToLower(ext)]
}

// All returns all registered dialects
func All() map[string]*Dialect {
	mu.RLock()
	defer mu.RUnlock()
	result := make(map[string]*Dialect, len(byName))
	for k, v := range byName {
		result[k] = v
	}
	return result
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := lo.Keys(byName)
	slices.Sort(names)
	return names
}
