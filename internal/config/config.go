// Package config loads the user-level proboot configuration.
//
// The file lives at $XDG_CONFIG_HOME/proboot/config.yaml (falling back to
// ~/.config/proboot/config.yaml). Every key can be overridden from the
// environment with the PROBOOT_ prefix, dots replaced by underscores.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/chaz8081/proboot/internal/vcs"
	"github.com/chaz8081/proboot/pkg/schema"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Prompt styles.
const (
	PromptPlain = "plain"
	PromptForm  = "form"
)

// Package managers the Node templates can drive.
const (
	PackageManagerNPM  = "npm"
	PackageManagerPNPM = "pnpm"
)

// Config is the effective configuration of a run.
type Config struct {
	VCS       VCSConfig                   `mapstructure:"vcs" yaml:"vcs" json:"vcs"`
	Node      NodeConfig                  `mapstructure:"node" yaml:"node" json:"node"`
	Python    PythonConfig                `mapstructure:"python" yaml:"python" json:"python"`
	Project   ProjectConfig               `mapstructure:"project" yaml:"project" json:"project"`
	Prompt    PromptConfig                `mapstructure:"prompt" yaml:"prompt" json:"prompt"`
	Templates map[string]TemplateSettings `mapstructure:"templates" yaml:"templates,omitempty" json:"templates,omitempty"`
}

// VCSConfig controls repository initialization.
type VCSConfig struct {
	Backend       string `mapstructure:"backend" yaml:"backend" json:"backend" jsonschema:"enum=exec,enum=embedded,description=exec runs the git binary; embedded uses go-git"`
	Binary        string `mapstructure:"binary" yaml:"binary" json:"binary" jsonschema:"description=git executable used by the exec backend"`
	DefaultBranch string `mapstructure:"default_branch" yaml:"default_branch" json:"default_branch" jsonschema:"description=initial branch name; empty keeps git's default"`
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message" json:"commit_message"`
	AuthorName    string `mapstructure:"author_name" yaml:"author_name" json:"author_name"`
	AuthorEmail   string `mapstructure:"author_email" yaml:"author_email" json:"author_email"`
}

// NodeConfig controls the TypeScript and React templates.
type NodeConfig struct {
	PackageManager     string   `mapstructure:"package_manager" yaml:"package_manager" json:"package_manager" jsonschema:"enum=pnpm,enum=npm"`
	TypeScriptPackages []string `mapstructure:"typescript_packages" yaml:"typescript_packages" json:"typescript_packages"`
	ViteTemplate       string   `mapstructure:"vite_template" yaml:"vite_template" json:"vite_template"`
}

// PythonConfig controls the Python template.
type PythonConfig struct {
	Interpreter    string `mapstructure:"interpreter" yaml:"interpreter" json:"interpreter"`
	VenvDir        string `mapstructure:"venv_dir" yaml:"venv_dir" json:"venv_dir"`
	RequiresPython string `mapstructure:"requires_python" yaml:"requires_python" json:"requires_python"`
}

// ProjectConfig holds metadata written into generated manifests.
type ProjectConfig struct {
	Version     string `mapstructure:"version" yaml:"version" json:"version" jsonschema:"description=semantic version written to new manifests"`
	Description string `mapstructure:"description" yaml:"description" json:"description"`
	AuthorName  string `mapstructure:"author_name" yaml:"author_name" json:"author_name"`
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email" json:"author_email"`
	License     string `mapstructure:"license" yaml:"license" json:"license"`
}

// PromptConfig controls interactive mode.
type PromptConfig struct {
	Style string `mapstructure:"style" yaml:"style" json:"style" jsonschema:"enum=plain,enum=form"`
}

// TemplateSettings overrides global values for one project type.
type TemplateSettings struct {
	// DefaultBranch, when set, replaces vcs.default_branch. An empty string
	// means "pass no branch to git init".
	DefaultBranch *string `mapstructure:"default_branch" yaml:"default_branch,omitempty" json:"default_branch,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	interpreter := "python3"
	if runtime.GOOS == "windows" {
		interpreter = "python"
	}
	return &Config{
		VCS: VCSConfig{
			Backend:       vcs.BackendExec,
			Binary:        "git",
			DefaultBranch: "main",
			CommitMessage: "Initial commit",
			AuthorName:    "proboot",
			AuthorEmail:   "proboot@localhost",
		},
		Node: NodeConfig{
			PackageManager:     PackageManagerPNPM,
			TypeScriptPackages: []string{"typescript", "@types/node"},
			ViteTemplate:       "react-ts",
		},
		Python: PythonConfig{
			Interpreter:    interpreter,
			VenvDir:        "venv",
			RequiresPython: ">=3.7",
		},
		Project: ProjectConfig{
			Version:     "0.1.0",
			Description: "A project created with proboot",
			AuthorName:  "Your Name",
			AuthorEmail: "your.email@example.com",
			License:     "MIT",
		},
		Prompt: PromptConfig{Style: PromptPlain},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/proboot/config.yaml, falling back to
// ~/.config/proboot/config.yaml.
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "proboot", "config.yaml")
}

// newViper registers every default so AutomaticEnv can override any key.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PROBOOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PROBOOT_VCS_DEFAULT_BRANCH= clears the branch.
	v.AllowEmptyEnv(true)

	d := Default()
	v.SetDefault("vcs.backend", d.VCS.Backend)
	v.SetDefault("vcs.binary", d.VCS.Binary)
	v.SetDefault("vcs.default_branch", d.VCS.DefaultBranch)
	v.SetDefault("vcs.commit_message", d.VCS.CommitMessage)
	v.SetDefault("vcs.author_name", d.VCS.AuthorName)
	v.SetDefault("vcs.author_email", d.VCS.AuthorEmail)
	v.SetDefault("node.package_manager", d.Node.PackageManager)
	v.SetDefault("node.typescript_packages", d.Node.TypeScriptPackages)
	v.SetDefault("node.vite_template", d.Node.ViteTemplate)
	v.SetDefault("python.interpreter", d.Python.Interpreter)
	v.SetDefault("python.venv_dir", d.Python.VenvDir)
	v.SetDefault("python.requires_python", d.Python.RequiresPython)
	v.SetDefault("project.version", d.Project.Version)
	v.SetDefault("project.description", d.Project.Description)
	v.SetDefault("project.author_name", d.Project.AuthorName)
	v.SetDefault("project.author_email", d.Project.AuthorEmail)
	v.SetDefault("project.license", d.Project.License)
	v.SetDefault("prompt.style", d.Prompt.Style)
	return v
}

// Load reads the config file at path (a missing file yields the defaults),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := newViper(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations, the project version and template keys.
func (c *Config) Validate() error {
	if err := vcs.Validate(c.VCS.Backend); err != nil {
		return fmt.Errorf("%w: vcs.backend: %v", ErrInvalidConfig, err)
	}
	if c.VCS.Backend == vcs.BackendExec && c.VCS.Binary == "" {
		return fmt.Errorf("%w: vcs.binary must be set for the exec backend", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.VCS.CommitMessage) == "" {
		return fmt.Errorf("%w: vcs.commit_message must not be empty", ErrInvalidConfig)
	}
	switch c.Node.PackageManager {
	case PackageManagerNPM, PackageManagerPNPM:
	default:
		return fmt.Errorf("%w: node.package_manager %q (valid: pnpm, npm)", ErrInvalidConfig, c.Node.PackageManager)
	}
	if c.Python.Interpreter == "" {
		return fmt.Errorf("%w: python.interpreter must be set", ErrInvalidConfig)
	}
	if err := schema.ValidateName(c.Python.VenvDir); err != nil {
		return fmt.Errorf("%w: python.venv_dir: %v", ErrInvalidConfig, err)
	}
	if _, err := semver.StrictNewVersion(c.Project.Version); err != nil {
		return fmt.Errorf("%w: project.version %q: %v", ErrInvalidConfig, c.Project.Version, err)
	}
	switch c.Prompt.Style {
	case PromptPlain, PromptForm:
	default:
		return fmt.Errorf("%w: prompt.style %q (valid: plain, form)", ErrInvalidConfig, c.Prompt.Style)
	}
	for key := range c.Templates {
		if t, ok := schema.ParseProjectType(key); !ok || string(t) != key {
			return fmt.Errorf("%w: templates.%s: unknown project type (valid: %s)", ErrInvalidConfig, key, joinTypes())
		}
	}
	return nil
}

// BranchFor resolves the initial branch for a project type: the per-template
// override when present, otherwise vcs.default_branch.
func (c *Config) BranchFor(t schema.ProjectType) string {
	if s, ok := c.Templates[string(t)]; ok && s.DefaultBranch != nil {
		return *s.DefaultBranch
	}
	return c.VCS.DefaultBranch
}

func joinTypes() string {
	names := make([]string, 0, len(schema.ProjectTypes))
	for _, t := range schema.ProjectTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
