package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaz8081/proboot/internal/config"
	"github.com/chaz8081/proboot/internal/vcs"
)

var lookPath = exec.LookPath

// --- Pure helper functions (tested independently) ---

// formatPaths returns a human-readable summary of the config location and
// the directory new projects are created in.
func formatPaths(configPath, projectDir string) string {
	var b strings.Builder

	status := "[not found]"
	if _, err := os.Stat(configPath); err == nil {
		status = "[found]"
	}
	fmt.Fprintf(&b, "Config file:    %s  %s\n", configPath, status)

	absProject, err := filepath.Abs(projectDir)
	if err != nil {
		absProject = projectDir
	}
	fmt.Fprintf(&b, "Project dir:    %s\n", absProject)

	return b.String()
}

// configProblem is a single validation finding.
type configProblem struct {
	field   string
	message string
}

// configValidationResult holds the results of a config validation run.
type configValidationResult struct {
	tools    []toolCheck
	problems []configProblem
}

// toolCheck records where a required executable was found.
type toolCheck struct {
	key  string
	name string
	path string
}

func (r *configValidationResult) ok() bool {
	return len(r.problems) == 0
}

func (r *configValidationResult) add(field, message string) {
	r.problems = append(r.problems, configProblem{field: field, message: message})
}

// requiredTools lists the executables cfg will invoke, keyed by the config
// key that names them.
func requiredTools(cfg *config.Config) [][2]string {
	var tools [][2]string
	if cfg.VCS.Backend == vcs.BackendExec {
		tools = append(tools, [2]string{"vcs.binary", cfg.VCS.Binary})
	}
	tools = append(tools, [2]string{"node.package_manager", cfg.Node.PackageManager})
	if cfg.Node.PackageManager == config.PackageManagerNPM {
		tools = append(tools, [2]string{"node.package_manager", "npx"})
	}
	tools = append(tools, [2]string{"python.interpreter", cfg.Python.Interpreter})
	return tools
}

// validateConfig checks that every executable cfg refers to is on PATH.
// Value checks already happened in config.Load.
func validateConfig(cfg *config.Config) *configValidationResult {
	result := &configValidationResult{}
	for _, tool := range requiredTools(cfg) {
		path, err := lookPath(tool[1])
		if err != nil {
			result.add(tool[0], tool[1]+" not found in PATH")
			continue
		}
		result.tools = append(result.tools, toolCheck{key: tool[0], name: tool[1], path: path})
	}
	return result
}

func printValidation(w io.Writer, result *configValidationResult) {
	fmt.Fprintf(w, "Tools (%d):\n", len(result.tools)+len(result.problems))
	for _, t := range result.tools {
		fmt.Fprintf(w, "  ok  %s  %s\n", t.name, t.path)
	}
	for _, p := range result.problems {
		fmt.Fprintf(w, "  FAIL  %s  %s\n", p.field, p.message)
	}
	fmt.Fprintln(w)
}

// --- Cobra commands ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create, inspect and validate the proboot configuration",
	Long: `Manage the optional config file that tunes the templates.

Subcommands:
  init       Write a commented starter config
  show       Print the effective config (file + environment) as YAML
  path       Show the resolved config file location
  validate   Check the config and the tools it refers to
  schema     Print a JSON schema for the config file`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		if err := config.WriteBootstrap(path); err != nil {
			return err
		}
		out := newPrinter(cmd)
		out.Success("Created %s", path)
		out.Step("Run 'proboot config validate' to check your setup.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Loads the config file, applies PROBOOT_* environment overrides and
prints the result as YAML. Built-in defaults are shown for missing keys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:     "path",
	Aliases: []string{"paths"},
	Short:   "Show the resolved config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatPaths(resolveConfigPath(), baseDir))
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration for problems",
	Long: `Loads the configuration and runs offline checks:
- The config file parses and every value is valid
- The git binary, package manager and Python interpreter are on PATH

Exits with code 1 if any problems are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		path := resolveConfigPath()

		status := "ok"
		if _, err := os.Stat(path); err != nil {
			status = "not found, using defaults"
		}
		fmt.Fprintf(w, "Loading config:  %s  %s\n\n", path, status)

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		result := validateConfig(cfg)
		printValidation(w, result)

		if !result.ok() {
			return fmt.Errorf("%d problem(s) found", len(result.problems))
		}
		fmt.Fprintln(w, "All checks passed.")
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print a JSON schema for the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.JSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
