// Package vcs initializes version control in a freshly generated project.
package vcs

import (
	"context"
	"fmt"
)

// Backend names accepted in configuration.
const (
	BackendExec     = "exec"
	BackendEmbedded = "embedded"
)

// Backends lists the valid backend names.
var Backends = []string{BackendExec, BackendEmbedded}

// Repository is the set of version-control operations templates need. Every
// call is synchronous and any failure is fatal to the run.
type Repository interface {
	// Init creates an empty repository in dir. An empty branch leaves the
	// initial branch name to the backend's default.
	Init(ctx context.Context, dir, branch string) error
	// AddAll stages every file in dir.
	AddAll(ctx context.Context, dir string) error
	// Commit records the staged files with message.
	Commit(ctx context.Context, dir, message string) error
}

// InitWithCommit runs Init, AddAll and Commit in order, stopping at the
// first failure.
func InitWithCommit(ctx context.Context, repo Repository, dir, branch, message string) error {
	if err := repo.Init(ctx, dir, branch); err != nil {
		return err
	}
	if err := repo.AddAll(ctx, dir); err != nil {
		return err
	}
	return repo.Commit(ctx, dir, message)
}

// Validate checks a backend name.
func Validate(backend string) error {
	for _, b := range Backends {
		if backend == b {
			return nil
		}
	}
	return fmt.Errorf("unknown vcs backend %q (valid: exec, embedded)", backend)
}
