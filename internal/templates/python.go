package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chaz8081/proboot/internal/engine"
	"github.com/chaz8081/proboot/internal/manifest"
	"github.com/chaz8081/proboot/pkg/schema"
)

// Python bootstraps a setuptools project with a src layout and a virtual
// environment.
type Python struct{}

func (Python) Type() schema.ProjectType { return schema.Python }

func (Python) Description() string {
	return "Python package with src layout, pyproject.toml and a virtual environment"
}

type readmeData struct {
	Name     string
	Activate string
	License  string
}

func (p Python) Bootstrap(ctx context.Context, env Env, name string, initVCS bool) error {
	dir, err := env.createProjectDir(name)
	if err != nil {
		return err
	}

	pkg := filepath.Join(dir, "src", name)
	if err := os.MkdirAll(filepath.Join(pkg, "features"), engine.DirPerm); err != nil {
		return fmt.Errorf("create package directories: %w", err)
	}
	for _, marker := range []string{
		filepath.Join(pkg, "__init__.py"),
		filepath.Join(pkg, "features", "__init__.py"),
	} {
		if err := engine.Touch(marker); err != nil {
			return err
		}
	}
	env.Out.Step("Created project structure for %s", name)

	if err := writeRendered(filepath.Join(pkg, "main.py"), "files/python/main.py.tmpl", nil); err != nil {
		return err
	}
	env.Out.Step("Created main.py")

	cfg := env.Config
	readme := readmeData{
		Name:     name,
		Activate: activateCommand(env.goos(), cfg.Python.VenvDir),
		License:  cfg.Project.License,
	}
	if err := writeRendered(filepath.Join(dir, "README.md"), "files/python/README.md.tmpl", readme); err != nil {
		return err
	}
	env.Out.Step("Created README.md")

	if err := writeRendered(filepath.Join(dir, ".gitignore"), "files/python/gitignore.tmpl", nil); err != nil {
		return err
	}
	env.Out.Step("Created .gitignore")

	pyproject, err := manifest.NewPyProject(name, manifest.PyProjectOptions{
		Version:        cfg.Project.Version,
		Description:    cfg.Project.Description,
		AuthorName:     cfg.Project.AuthorName,
		AuthorEmail:    cfg.Project.AuthorEmail,
		RequiresPython: cfg.Python.RequiresPython,
	}).Encode()
	if err != nil {
		return err
	}
	if err := engine.WriteFile(filepath.Join(dir, manifest.PyProjectFile), pyproject); err != nil {
		return err
	}
	env.Out.Step("Created %s", manifest.PyProjectFile)

	if err := writeRendered(filepath.Join(dir, "setup.py"), "files/python/setup.py.tmpl", nil); err != nil {
		return err
	}
	env.Out.Step("Created setup.py")

	if err := env.run(ctx, dir, cfg.Python.Interpreter, "-m", "venv", cfg.Python.VenvDir); err != nil {
		return fmt.Errorf("create virtual environment: %w", err)
	}
	env.Out.Step("Created virtual environment")
	p.reportActivation(env, name)

	if initVCS {
		if err := env.Repo.Init(ctx, dir, env.branchFor(schema.Python)); err != nil {
			return fmt.Errorf("initialize git repository: %w", err)
		}
		env.Out.Step("Initialized git repository")
	}
	return nil
}

// reportActivation prints how to activate the environment. It never runs it.
func (Python) reportActivation(env Env, name string) {
	venv := filepath.Join(env.projectDir(name), env.Config.Python.VenvDir)
	if _, err := os.Stat(venv); err != nil {
		env.Out.Warn("Virtual environment not found.")
		return
	}
	script := filepath.Join(venv, activateScript(env.goos()))
	if _, err := os.Stat(script); err != nil {
		env.Out.Warn("Virtual environment exists but activation script not found.")
		return
	}
	env.Out.Step("To activate the virtual environment, run:")
	if env.goos() == "windows" {
		env.Out.Step("%s", script)
	} else {
		env.Out.Step("source %s", script)
	}
}

func activateScript(goos string) string {
	if goos == "windows" {
		return filepath.Join("Scripts", "activate.bat")
	}
	return filepath.Join("bin", "activate")
}

// activateCommand is the command documented in the README, relative to the
// project root.
func activateCommand(goos, venvDir string) string {
	if goos == "windows" {
		return venvDir + `\Scripts\activate.bat`
	}
	return "source " + venvDir + "/bin/activate"
}
