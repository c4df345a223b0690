package vcs

import (
	"context"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Embedded implements Repository in-process with go-git, so no git binary
// is needed.
type Embedded struct {
	AuthorName  string
	AuthorEmail string
	// now is swapped in tests.
	now func() time.Time
}

var _ Repository = (*Embedded)(nil)

// NewEmbedded returns an Embedded backend committing as the given author.
func NewEmbedded(authorName, authorEmail string) *Embedded {
	if authorName == "" {
		authorName = "proboot"
	}
	if authorEmail == "" {
		authorEmail = "proboot@localhost"
	}
	return &Embedded{AuthorName: authorName, AuthorEmail: authorEmail, now: time.Now}
}

// Init creates a non-bare repository whose HEAD points at branch.
func (e *Embedded) Init(ctx context.Context, dir, branch string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := &git.PlainInitOptions{}
	if branch != "" {
		opts.InitOptions.DefaultBranch = plumbing.NewBranchReferenceName(branch)
	}
	if _, err := git.PlainInitWithOptions(dir, opts); err != nil {
		return fmt.Errorf("git init %s: %w", dir, err)
	}
	return nil
}

func (e *Embedded) worktree(dir string) (*git.Worktree, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	return wt, nil
}

// AddAll stages everything not excluded by .gitignore.
func (e *Embedded) AddAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wt, err := e.worktree(dir)
	if err != nil {
		return err
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// Commit records the index with message.
func (e *Embedded) Commit(ctx context.Context, dir, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wt, err := e.worktree(dir)
	if err != nil {
		return err
	}
	sig := &object.Signature{Name: e.AuthorName, Email: e.AuthorEmail, When: e.now()}
	if _, err := wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}
