// Package batch reconciles many files of a work tree against their
// committed versions.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/signadot/parenrestore/debug"
	"github.com/signadot/parenrestore/dialect"
)

type Action int

const (
	// Skipped files had nothing to restore and are left alone.
	Skipped Action = iota
	// Restored files are rewritten with some forms restored.
	Restored
	// RestoredWhole files are rewritten with their committed text.
	RestoredWhole
	// Failed files are left alone.
	Failed
)

func (a Action) String() string {
	switch a {
	case Skipped:
		return "skipped"
	case Restored:
		return "restored"
	case RestoredWhole:
		return "restored whole file"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("<action %d>", int(a))
	}
}

// Source provides the committed text of a file.  *gitrepo.Repository is a
// Source.
type Source interface {
	HeadText(rel string) (string, error)
}

type File struct {
	// Path is slash separated and relative to the Runner's Root.
	Path    string
	Dialect *dialect.Dialect
}

type Outcome struct {
	File   File
	Action Action
	Count  int
	Err    error
	// Current and Final hold the working text and the text written, or
	// which would be written in a dry run, for files that did not fail.
	Current string
	Final   string
}

func (o *Outcome) String() string {
	switch o.Action {
	case Restored:
		return fmt.Sprintf("restored %d blocks", o.Count)
	default:
		return o.Action.String()
	}
}

type Runner struct {
	Source Source
	Root   string
	// Jobs bounds the number of files processed at once.  Values below 1
	// mean 1.
	Jobs   int
	DryRun bool
	// Log receives one record per file when non-nil.
	Log *slog.Logger
}

// Run processes files and returns their outcomes in the same order.  The
// error aggregates the failures of all files.  Files not yet started when
// ctx is done fail with the context's error.
func (r *Runner) Run(ctx context.Context, files []File) ([]Outcome, error) {
	outs := make([]Outcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Jobs))
	for i := range files {
		outs[i] = Outcome{File: files[i], Action: Failed}
		if err := gctx.Err(); err != nil {
			outs[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outs[i].Err = err
				return nil
			}
			outs[i] = r.one(files[i])
			return nil
		})
	}
	g.Wait()
	var merr *multierror.Error
	for i := range outs {
		if o := &outs[i]; o.Action == Failed {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", o.File.Path, o.Err))
		}
	}
	return outs, merr.ErrorOrNil()
}

func (r *Runner) one(f File) Outcome {
	out, err := r.reconcile(f)
	if err != nil {
		out = Outcome{File: f, Action: Failed, Err: err}
	}
	if debug.Batch() {
		debug.Logf("batch: %s %s\n", f.Path, out.String())
	}
	if r.Log != nil {
		attrs := []any{"file", f.Path, "action", out.Action.String()}
		if out.Action == Restored {
			attrs = append(attrs, "count", out.Count)
		}
		if err != nil {
			r.Log.Error("reconcile", append(attrs, "error", err)...)
		} else {
			r.Log.Debug("reconcile", attrs...)
		}
	}
	return out
}

func (r *Runner) reconcile(f File) (Outcome, error) {
	out := Outcome{File: f}
	if f.Dialect == nil {
		return out, fmt.Errorf("no dialect for %s", f.Path)
	}
	abs := filepath.Join(r.Root, filepath.FromSlash(f.Path))
	info, err := os.Stat(abs)
	if err != nil {
		return out, err
	}
	cur, err := os.ReadFile(abs)
	if err != nil {
		return out, err
	}
	old, err := r.Source.HeadText(f.Path)
	if err != nil {
		return out, err
	}
	res, err := f.Dialect.Reconciler().Reconcile(old, string(cur))
	if err != nil {
		return out, err
	}
	out.Current = string(cur)
	out.Final = res.Text
	out.Count = res.Count
	switch {
	case res.Count == 0:
		out.Action = Skipped
		return out, nil
	case res.Text == old:
		out.Action = RestoredWhole
	default:
		out.Action = Restored
	}
	if r.DryRun {
		return out, nil
	}
	if err := os.WriteFile(abs, []byte(res.Text), info.Mode().Perm()); err != nil {
		return out, fmt.Errorf("could not write %q: %w", abs, err)
	}
	return out, nil
}
