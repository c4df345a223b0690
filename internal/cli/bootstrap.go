package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaz8081/proboot/internal/config"
	"github.com/chaz8081/proboot/internal/console"
	"github.com/chaz8081/proboot/internal/engine"
	"github.com/chaz8081/proboot/internal/registry"
	"github.com/chaz8081/proboot/internal/templates"
	"github.com/chaz8081/proboot/internal/vcs"
	"github.com/chaz8081/proboot/pkg/schema"
)

// ErrNameRequired is returned in flag mode when no project name is given.
var ErrNameRequired = errors.New("a project name is required when flags are given")

func runRoot(cmd *cobra.Command, args []string) error {
	out := newPrinter(cmd)

	path := resolveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	out.Debugf("config: %s", path)

	reg := newRegistry()
	var req schema.BootstrapRequest
	if interactiveMode(cmd, args) {
		out.Debugf("mode: interactive (prompt style %s)", cfg.Prompt.Style)
		req, err = newPrompter(cmd, cfg, reg).Prompt(cmd.Context())
	} else {
		out.Debugf("mode: flags")
		req, err = requestFromFlags(args)
	}
	if err != nil {
		return err
	}

	return bootstrap(cmd.Context(), cmd, cfg, reg, out, req)
}

// interactiveMode reports whether neither a name nor a bootstrap flag was
// given.
func interactiveMode(cmd *cobra.Command, args []string) bool {
	if len(args) > 0 {
		return false
	}
	for _, name := range bootstrapFlags {
		if cmd.Flags().Changed(name) {
			return false
		}
	}
	return true
}

// requestFromFlags builds the request from the positional name and flags.
// The type is passed through unchecked; unknown types are handled at
// dispatch.
func requestFromFlags(args []string) (schema.BootstrapRequest, error) {
	if len(args) == 0 || args[0] == "" {
		return schema.BootstrapRequest{}, ErrNameRequired
	}
	t, ok := schema.ParseProjectType(projectType)
	if !ok {
		t = schema.ProjectType(projectType)
	}
	req := schema.BootstrapRequest{
		Name:               args[0],
		Type:               t,
		InitVersionControl: !noVCS,
	}
	if err := req.Validate(); err != nil {
		return schema.BootstrapRequest{}, err
	}
	return req, nil
}

func newRepository(cfg *config.Config, runner engine.Runner) vcs.Repository {
	if cfg.VCS.Backend == vcs.BackendEmbedded {
		return vcs.NewEmbedded(cfg.VCS.AuthorName, cfg.VCS.AuthorEmail)
	}
	return vcs.NewExec(runner, cfg.VCS.Binary)
}

// bootstrap dispatches req. An unsupported type is reported and is not an
// error.
func bootstrap(ctx context.Context, cmd *cobra.Command, cfg *config.Config, reg *registry.Registry, out *console.Printer, req schema.BootstrapRequest) error {
	runner := newRunner()
	env := templates.Env{
		Root:   baseDir,
		Runner: runner,
		Repo:   newRepository(cfg, runner),
		Config: cfg,
		Out:    out,
	}
	if cmd.Flags().Changed("default-branch") {
		branch := defaultBranch
		env.Branch = &branch
	}
	out.Debugf("bootstrap %s (%s) in %s, vcs=%t", req.Name, req.Type, baseDir, req.InitVersionControl)

	err := reg.Dispatch(ctx, env, req)
	if errors.Is(err, registry.ErrUnsupportedType) {
		out.Warn("Project type %s is not supported yet.", req.Type)
		if s := reg.Suggest(string(req.Type)); s != "" {
			out.Step("Did you mean %q? Run 'proboot types' to list every type.", s)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("bootstrap %s: %w", req.Name, err)
	}
	return nil
}
