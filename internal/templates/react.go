package templates

import (
	"context"
	"fmt"

	"github.com/chaz8081/proboot/pkg/schema"
)

// ReactTypeScript bootstraps a Vite React app with the react-ts starter.
type ReactTypeScript struct{}

func (ReactTypeScript) Type() schema.ProjectType { return schema.ReactTypeScript }

func (ReactTypeScript) Description() string {
	return "React + TypeScript app scaffolded by Vite"
}

func (ReactTypeScript) Bootstrap(ctx context.Context, env Env, name string, initVCS bool) error {
	dir, err := env.createProjectDir(name)
	if err != nil {
		return err
	}
	pm := packageManager(env.Config.Node.PackageManager)

	if err := env.run(ctx, dir, string(pm), pm.createVite(env.Config.Node.ViteTemplate)...); err != nil {
		return fmt.Errorf("scaffold vite app: %w", err)
	}

	if err := env.run(ctx, dir, string(pm), pm.install()...); err != nil {
		return fmt.Errorf("install dependencies: %w", err)
	}
	env.Out.Step("Dependencies installed successfully.")

	if initVCS {
		if err := env.Repo.Init(ctx, dir, env.branchFor(schema.ReactTypeScript)); err != nil {
			return fmt.Errorf("initialize git repository: %w", err)
		}
		env.Out.Step("Initialized git repository")
	}

	env.Out.Success("React TypeScript project '%s' has been created successfully.", name)
	env.Out.Step("To start the development server, run:")
	env.Out.Step("cd %s", name)
	env.Out.Step("%s", pm.runHint("dev"))
	return nil
}
