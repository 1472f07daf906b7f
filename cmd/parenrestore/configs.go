package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/parenrestore/config"
	"github.com/signadot/parenrestore/dialect"
	"github.com/signadot/parenrestore/libdiff"
)

type MainConfig struct {
	Jobs    int    `cli:"name=j aliases=jobs desc='files processed at once (default from config, else GOMAXPROCS)'"`
	Color   bool   `cli:"name=color desc='color output'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log each file'"`
	Config  string `cli:"name=config desc='config file (default .parenrestore.yaml in the repository root)'"`

	Out      string
	CloseOut func() error

	ctx context.Context
	log *slog.Logger

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) loadConfig(root string) (*config.Config, error) {
	var (
		c   *config.Config
		err error
	)
	if cfg.Config != "" {
		c, err = config.LoadFile(root, cfg.Config)
	} else {
		c, err = config.Load(root)
	}
	if err != nil {
		return nil, err
	}
	if c.Path != "" {
		cfg.log.Debug("loaded config", "path", c.Path)
	}
	return c, nil
}

// useColor reports whether output to w is colored: -color forces it, an
// explicit -color=false disables it, otherwise terminals get color.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// diffColors returns the colors for diffs written to w, or nil.
func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if !cfg.useColor(w) {
		return nil
	}
	color.NoColor = false
	return libdiff.NewColors()
}

// dialectFor resolves the -d option, falling back to the extension of
// path.
func dialectFor(name, path string) (*dialect.Dialect, error) {
	if name != "" {
		return dialect.Get(name)
	}
	if d := dialect.ForPath(path); d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("%w: no dialect for %q, use -d", cli.ErrUsage, path)
}

type RunConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n aliases=dry-run desc='report what would change without writing'"`

	Run *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int  `cli:"name=U desc='lines of context (default 3)'"`
	Stat    bool `cli:"name=stat desc='print inserted and deleted line counts per file instead of diffs'"`

	Diff *cli.Command
}

type FilesConfig struct {
	*MainConfig
	Write   bool   `cli:"name=w desc='write the result into the new file'"`
	Dialect string `cli:"name=d aliases=dialect desc='dialect (default from the file extension)'"`

	Files *cli.Command
}

type BlocksConfig struct {
	*MainConfig
	Dialect string `cli:"name=d aliases=dialect desc='dialect (default from the file extension)'"`

	Blocks *cli.Command
}

type CanonConfig struct {
	*MainConfig
	Dialect string `cli:"name=d aliases=dialect desc='dialect (default from the file extension, clojure for stdin)'"`

	Canon *cli.Command
}

type DialectsConfig struct {
	*MainConfig

	Dialects *cli.Command
}
