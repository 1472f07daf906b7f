// Package config loads the .parenrestore.yaml file of a repository.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/signadot/parenrestore/dialect"
	"github.com/signadot/parenrestore/filter"

	"github.com/goccy/go-yaml"
)

const (
	// EnvConfig names a config file to use instead of the one in the
	// repository root.  Relative paths are relative to the root.
	EnvConfig = "PARENRESTORE_CONFIG"
)

var ErrConfig = errors.New("config error")

var fileNames = []string{".parenrestore.yaml", ".parenrestore.yml"}

type Config struct {
	Root string `yaml:"-"`
	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`

	// Dialects restricts the enabled dialects.  Empty enables all.
	Dialects []string `yaml:"dialects,omitempty"`
	// Extensions maps extra file extensions to dialect names.
	Extensions map[string]string `yaml:"extensions,omitempty"`
	Jobs       int               `yaml:"jobs,omitempty"`
	Filter     string            `yaml:"filter,omitempty"`
	// Exclude holds path.Match patterns on slash separated paths relative
	// to the root.  A pattern matching a directory excludes its contents.
	Exclude []string `yaml:"exclude,omitempty"`

	filter *filter.Filter
}

// Default returns the configuration used when root has no config file.
func Default(root string) *Config {
	c := &Config{Root: root}
	if err := c.init(); err != nil {
		panic(err)
	}
	return c
}

// Load reads the config of the repository at root: the file named by
// $PARENRESTORE_CONFIG if set, else the first of .parenrestore.yaml and
// .parenrestore.yml found in root, else the defaults.
func Load(root string) (*Config, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		if !filepath.IsAbs(env) {
			env = filepath.Join(root, env)
		}
		return LoadFile(root, env)
	}
	for _, name := range fileNames {
		p := filepath.Join(root, name)
		d, err := os.ReadFile(p)
		if err == nil {
			return Parse(root, p, d)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: could not read %q: %w", ErrConfig, p, err)
		}
	}
	return Default(root), nil
}

// LoadFile reads the config file p, which must exist.
func LoadFile(root, p string) (*Config, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %q: %w", ErrConfig, p, err)
	}
	return Parse(root, p, d)
}

// Parse decodes and validates the config document d read from file p.
func Parse(root, p string, d []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalWithOptions(d, c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: could not decode %s: %w", ErrConfig, p, err)
	}
	c.Root = root
	c.Path = p
	if err := c.init(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, p, err)
	}
	return c, nil
}

func (c *Config) init() error {
	for _, name := range c.Dialects {
		if _, err := dialect.Get(name); err != nil {
			return err
		}
	}
	for ext, name := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
		if _, err := dialect.Get(name); err != nil {
			return fmt.Errorf("extension %s: %w", ext, err)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.GOMAXPROCS(0)
	}
	for _, pat := range c.Exclude {
		if _, err := path.Match(pat, ""); err != nil {
			return fmt.Errorf("exclude pattern %q: %w", pat, err)
		}
	}
	f, err := filter.Compile(c.Filter)
	if err != nil {
		return err
	}
	c.filter = f
	return nil
}

// DialectFor returns the enabled dialect of the file at path, or nil.
func (c *Config) DialectFor(p string) *dialect.Dialect {
	var d *dialect.Dialect
	if name, ok := c.Extensions[filepath.Ext(p)]; ok {
		d = dialect.Lookup(name)
	} else {
		d = dialect.ForPath(p)
	}
	if d == nil {
		return nil
	}
	if len(c.Dialects) != 0 && !slices.Contains(c.Dialects, d.Name) {
		return nil
	}
	return d
}

// Excluded reports whether rel, a slash separated path relative to the
// root, or one of its parent directories matches an exclude pattern.
func (c *Config) Excluded(rel string) bool {
	for p := rel; p != "." && p != "/" && p != ""; p = path.Dir(p) {
		for _, pat := range c.Exclude {
			if ok, _ := path.Match(pat, p); ok {
				return true
			}
		}
	}
	return false
}

// Select returns the dialect of rel when the file is to be processed:
// it has an enabled dialect, is not excluded and passes the filter.
func (c *Config) Select(rel string, size int64) (*dialect.Dialect, error) {
	d := c.DialectFor(rel)
	if d == nil || c.Excluded(rel) {
		return nil, nil
	}
	ok, err := c.filter.Match(filter.File{
		Path:    rel,
		Ext:     path.Ext(rel),
		Dialect: d.Name,
		Size:    size,
	})
	if err != nil || !ok {
		return nil, err
	}
	return d, nil
}
