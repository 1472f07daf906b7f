package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/parenrestore/batch"
	"github.com/signadot/parenrestore/config"
	"github.com/signadot/parenrestore/gitrepo"
	"github.com/signadot/parenrestore/libdiff"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: run takes at most one pathspec, got %v", cli.ErrUsage, args)
	}
	return reconcileRepo(cfg.MainConfig, cc, args, cfg.DryRun, nil)
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: diff takes at most one pathspec, got %v", cli.ErrUsage, args)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: -U must not be negative", cli.ErrUsage)
	}
	return reconcileRepo(cfg.MainConfig, cc, args, true, cfg)
}

// reconcileRepo processes the modified files of the repository around the
// current directory.  With a non-nil dc it prints diffs instead of per-file
// statuses.
func reconcileRepo(cfg *MainConfig, cc *cli.Context, args []string, dryRun bool, dc *DiffConfig) error {
	repo, err := gitrepo.Open(".")
	if errors.Is(err, gitrepo.ErrNotRepository) {
		fmt.Fprintln(cc.Out, "Cannot run outside a git repository.")
		return cli.ExitCodeErr(1)
	}
	if err != nil {
		return err
	}
	conf, err := cfg.loadConfig(repo.Root())
	if err != nil {
		return err
	}
	spec := ""
	if len(args) == 1 {
		spec, err = repo.Rel(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	rels, err := repo.Modified(spec)
	if err != nil {
		return err
	}
	files, err := selectFiles(conf, repo, rels)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cc.Out, "No modified Lisp files found.")
		return cli.ExitCodeErr(1)
	}
	jobs := conf.Jobs
	if cfg.Jobs > 0 {
		jobs = cfg.Jobs
	}
	r := &batch.Runner{
		Source: repo,
		Root:   repo.Root(),
		Jobs:   jobs,
		DryRun: dryRun,
		Log:    cfg.log,
	}
	outs, runErr := r.Run(cfg.ctx, files)

	colors := cfg.diffColors(cc.Out)
	for i := range outs {
		o := &outs[i]
		if dc != nil {
			if o.Action == batch.Skipped || o.Action == batch.Failed {
				continue
			}
			if err := writeDiff(cc.Out, repo, o, dc, colors); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(cc.Out, "%s… %s\n", displayPath(repo, o.File.Path), status(o, colors != nil))
	}
	if runErr != nil {
		for i := range outs {
			if o := &outs[i]; o.Action == batch.Failed {
				cfg.log.Error("failed", "file", o.File.Path, "error", o.Err)
			}
		}
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeDiff(w io.Writer, repo *gitrepo.Repository, o *batch.Outcome, dc *DiffConfig, colors *libdiff.Colors) error {
	lines := libdiff.Lines(o.Current, o.Final)
	if dc.Stat {
		ins, del := libdiff.Count(lines)
		stat := fmt.Sprintf("+%d -%d", ins, del)
		if colors != nil {
			stat = colors.Insert("+%d", ins) + " " + colors.Delete("-%d", del)
		}
		_, err := fmt.Fprintf(w, "%s | %s\n", displayPath(repo, o.File.Path), stat)
		return err
	}
	hunks := libdiff.Hunks(lines, dc.Context)
	return libdiff.Write(w, "a/"+o.File.Path, "b/"+o.File.Path, hunks, colors)
}

func selectFiles(conf *config.Config, repo *gitrepo.Repository, rels []string) ([]batch.File, error) {
	var res []batch.File
	for _, rel := range rels {
		info, err := os.Stat(repo.Abs(rel))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		d, err := conf.Select(rel, info.Size())
		if err != nil {
			return nil, err
		}
		if d == nil {
			continue
		}
		res = append(res, batch.File{Path: rel, Dialect: d})
	}
	return res, nil
}

// displayPath shows rel relative to the current directory when possible.
func displayPath(repo *gitrepo.Repository, rel string) string {
	wd, err := os.Getwd()
	if err != nil {
		return rel
	}
	p, err := filepath.Rel(wd, repo.Abs(rel))
	if err != nil {
		return rel
	}
	return p
}

func status(o *batch.Outcome, colored bool) string {
	s := o.String()
	if !colored {
		return s
	}
	switch o.Action {
	case batch.Restored, batch.RestoredWhole:
		return color.GreenString("%s", s)
	case batch.Failed:
		return color.RedString("%s", s)
	}
	return s
}
