package templates

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/chaz8081/proboot/internal/manifest"
	"github.com/chaz8081/proboot/internal/vcs"
	"github.com/chaz8081/proboot/pkg/schema"
)

// TypeScript bootstraps a standalone TypeScript package compiled with tsc.
type TypeScript struct{}

func (TypeScript) Type() schema.ProjectType { return schema.TypeScript }

func (TypeScript) Description() string {
	return "standalone TypeScript package with a tsc build script"
}

func (TypeScript) Bootstrap(ctx context.Context, env Env, name string, initVCS bool) error {
	dir, err := env.createProjectDir(name)
	if err != nil {
		return err
	}
	pm := packageManager(env.Config.Node.PackageManager)

	if err := env.run(ctx, dir, string(pm), pm.init()...); err != nil {
		return fmt.Errorf("initialize package: %w", err)
	}

	if err := writeRendered(filepath.Join(dir, "src", "index.ts"), "files/typescript/index.ts.tmpl", nil); err != nil {
		return err
	}

	if err := env.run(ctx, dir, string(pm), pm.addDev(env.Config.Node.TypeScriptPackages)...); err != nil {
		return fmt.Errorf("install dependencies: %w", err)
	}
	env.Out.Step("Installed TypeScript and dependencies.")

	bin, args := pm.exec("tsc", "--init")
	if err := env.run(ctx, dir, bin, args...); err != nil {
		return fmt.Errorf("generate tsconfig.json: %w", err)
	}

	if err := manifest.UpdateScript(filepath.Join(dir, manifest.PackageJSON), "build", "tsc"); err != nil {
		return fmt.Errorf("add build script: %w", err)
	}
	env.Out.Step("Created TypeScript project structure for %s", name)

	if initVCS {
		branch := env.branchFor(schema.TypeScript)
		if err := vcs.InitWithCommit(ctx, env.Repo, dir, branch, env.Config.VCS.CommitMessage); err != nil {
			return fmt.Errorf("initialize git repository: %w", err)
		}
		env.Out.Step("Initialized git repository")
	}

	env.Out.Success("Standalone TypeScript project '%s' has been created successfully.", name)
	env.Out.Step("To build the project, run:")
	env.Out.Step("cd %s", name)
	env.Out.Step("%s", pm.runHint("build"))
	return nil
}
