package vcs

import (
	"context"

	"github.com/chaz8081/proboot/internal/engine"
)

// Exec drives the system git binary through an engine.Runner.
type Exec struct {
	Runner engine.Runner
	Binary string
}

var _ Repository = (*Exec)(nil)

// NewExec returns an Exec backend; an empty binary means "git".
func NewExec(runner engine.Runner, binary string) *Exec {
	if binary == "" {
		binary = "git"
	}
	return &Exec{Runner: runner, Binary: binary}
}

func (g *Exec) run(ctx context.Context, dir string, args ...string) error {
	return g.Runner.Run(ctx, engine.Command{Name: g.Binary, Args: args, Dir: dir})
}

// Init runs `git init`, adding --initial-branch when branch is set.
func (g *Exec) Init(ctx context.Context, dir, branch string) error {
	args := []string{"init"}
	if branch != "" {
		args = append(args, "--initial-branch="+branch)
	}
	return g.run(ctx, dir, args...)
}

// AddAll runs `git add .`.
func (g *Exec) AddAll(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "add", ".")
}

// Commit runs `git commit -m <message>`.
func (g *Exec) Commit(ctx context.Context, dir, message string) error {
	return g.run(ctx, dir, "commit", "-m", message)
}
