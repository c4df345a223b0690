// Package templates holds the project templates proboot can bootstrap. Each
// template owns an ordered sequence of filesystem writes and external
// commands; the first failure stops the sequence and nothing is rolled back.
package templates

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"text/template"

	"github.com/chaz8081/proboot/internal/config"
	"github.com/chaz8081/proboot/internal/console"
	"github.com/chaz8081/proboot/internal/engine"
	"github.com/chaz8081/proboot/internal/vcs"
	"github.com/chaz8081/proboot/pkg/schema"
)

//go:embed files
var files embed.FS

// Template knows how to create one kind of project.
type Template interface {
	// Type returns the canonical identifier (e.g., "python").
	Type() schema.ProjectType
	// Description is a one-line summary shown in menus and `proboot types`.
	Description() string
	// Bootstrap creates the project directory name under env.Root and
	// fills it in.
	Bootstrap(ctx context.Context, env Env, name string, initVCS bool) error
}

// Env is everything a template needs from the outside world. Every path a
// template touches is derived from Root; the process working directory is
// never changed.
type Env struct {
	Root   string
	Runner engine.Runner
	Repo   vcs.Repository
	Config *config.Config
	Out    *console.Printer
	// Branch, when non-nil, overrides the configured initial branch.
	Branch *string
	// GOOS selects platform-specific hints; empty means runtime.GOOS.
	GOOS string
}

func (e Env) projectDir(name string) string {
	return filepath.Join(e.Root, name)
}

func (e Env) goos() string {
	if e.GOOS != "" {
		return e.GOOS
	}
	return runtime.GOOS
}

func (e Env) branchFor(t schema.ProjectType) string {
	if e.Branch != nil {
		return *e.Branch
	}
	return e.Config.BranchFor(t)
}

func (e Env) run(ctx context.Context, dir, name string, args ...string) error {
	cmd := engine.Command{Name: name, Args: args, Dir: dir}
	e.Out.Debugf("run %s (in %s)", cmd, dir)
	return e.Runner.Run(ctx, cmd)
}

// createProjectDir is step one of every template.
func (e Env) createProjectDir(name string) (string, error) {
	dir := e.projectDir(name)
	if err := engine.CreateProjectDirectory(dir); err != nil {
		return "", fmt.Errorf("create project directory: %w", err)
	}
	e.Out.Step("Created project directory: %s", name)
	return dir, nil
}

// render executes an embedded template with missing keys treated as errors.
func render(name string, data any) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").ParseFS(files, name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func writeRendered(dest, name string, data any) error {
	content, err := render(name, data)
	if err != nil {
		return err
	}
	return engine.WriteFile(dest, content)
}
