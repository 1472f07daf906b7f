// Package gitrepo reads the state of the git work tree parenrestore runs
// in.
package gitrepo

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	gitc "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	ErrNotRepository = errors.New("not a git repository")
	ErrNoHead        = errors.New("repository has no HEAD commit")
	ErrNotInHead     = errors.New("file not in HEAD")
)

type Repository struct {
	repo *gitc.Repository
	root string
}

// Open opens the repository containing dir.
func Open(dir string) (*Repository, error) {
	repo, err := gitc.PlainOpenWithOptions(dir, &gitc.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gitc.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
	} else if err != nil {
		return nil, fmt.Errorf("git: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("git: %w", err)
	}
	return &Repository{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the top directory of the work tree.
func (r *Repository) Root() string {
	return r.root
}

// Abs returns the file system path of rel, a slash separated path relative
// to the root.
func (r *Repository) Abs(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

// Rel returns the slash separated path of p relative to the root.  p may be
// relative to the current directory.
func (r *Repository) Rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside repository %s", p, r.root)
	}
	return rel, nil
}

// Modified lists the files modified either in the index or in the work
// tree, but not both, sorted.  pathspec, relative to the root, restricts
// the result to a directory or to paths matching a glob; empty means all.
func (r *Repository) Modified(pathspec string) ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("error getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("error getting status: %w", err)
	}
	var res []string
	for f, s := range status {
		if !isModified(s) || !matchPathspec(pathspec, f) {
			continue
		}
		res = append(res, f)
	}
	slices.Sort(res)
	return res, nil
}

func isModified(s *gitc.FileStatus) bool {
	switch {
	case s.Staging == gitc.Modified && s.Worktree == gitc.Unmodified:
		return true
	case s.Staging == gitc.Unmodified && s.Worktree == gitc.Modified:
		return true
	}
	return false
}

func matchPathspec(spec, f string) bool {
	spec = strings.TrimSuffix(path.Clean(spec), "/")
	if spec == "." || spec == "" {
		return true
	}
	if strings.ContainsAny(spec, "*?[") {
		ok, _ := path.Match(spec, f)
		return ok
	}
	return f == spec || strings.HasPrefix(f, spec+"/")
}

// HeadText returns the contents of rel in the HEAD commit.
func (r *Repository) HeadText(rel string) (string, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", ErrNoHead
	} else if err != nil {
		return "", fmt.Errorf("git: %w", err)
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD commit object: %w", err)
	}
	f, err := commit.File(rel)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotInHead, rel)
	} else if err != nil {
		return "", fmt.Errorf("git: %s: %w", rel, err)
	}
	return f.Contents()
}
