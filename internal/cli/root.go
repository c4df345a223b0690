package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chaz8081/proboot/internal/cli/ui"
	"github.com/chaz8081/proboot/internal/config"
	"github.com/chaz8081/proboot/internal/console"
	"github.com/chaz8081/proboot/internal/engine"
	"github.com/chaz8081/proboot/internal/registry"
	"github.com/chaz8081/proboot/pkg/schema"
)

var (
	rootCmd = &cobra.Command{
		Use:   "proboot [project_name]",
		Short: "proboot - bootstrap a new project",
		Long: `proboot creates a new project directory from a built-in template,
runs the toolchain commands it needs and optionally initializes git.

Run it without arguments for interactive mode, or pass a name and flags.

  Examples:
  proboot                                  # interactive
  proboot demo                             # python project, git initialized
  proboot demo --type typescript --no-vcs  # typescript project, no git
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	verbose       bool
	configPath    string
	baseDir       string
	projectType   string
	noVCS         bool
	defaultBranch string

	newRunner        = func() engine.Runner { return engine.NewExecRunner() }
	newRegistry      = registry.Default
	pickType         = ui.Pick
	isInteractiveTTY = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// bootstrapFlags are the flags that switch the root command into flag mode.
// --verbose, --config and --dir only adjust how a run behaves.
var bootstrapFlags = []string{"type", "no-vcs", "no-git", "default-branch"}

func init() {
	// Persistent flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/proboot/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "C", ".", "directory to create the project in")

	flags := rootCmd.Flags()
	flags.StringVarP(&projectType, "type", "t", string(schema.DefaultProjectType),
		"project type: "+strings.Join(schema.Identifiers(), ", "))
	flags.BoolVar(&noVCS, "no-vcs", false, "do not initialize a git repository")
	flags.BoolVar(&noVCS, "no-git", false, "alias for --no-vcs")
	_ = flags.MarkHidden("no-git")
	flags.StringVar(&defaultBranch, "default-branch", "", "initial git branch (overrides config; empty keeps git's default)")

	_ = rootCmd.RegisterFlagCompletionFunc("type", completeProjectTypes)
}

// Execute runs the root cobra command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		console.New(verbose).Errorf("error: %v", err)
	}
	return err
}

// ExitCode maps an Execute error onto a process exit status. A failed
// external command passes its own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var perr *engine.ProcessError
	if errors.As(err, &perr) && perr.ExitCode > 0 {
		return perr.ExitCode
	}
	return 1
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func newPrinter(cmd *cobra.Command) *console.Printer {
	return console.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
}
