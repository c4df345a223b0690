package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// RenderBootstrap builds the commented starter config written by
// `proboot config init`. Each section gets a comment line and a blank line
// after it.
func RenderBootstrap(c *Config) (string, error) {
	var b strings.Builder

	b.WriteString("# config.yaml - proboot configuration\n")
	b.WriteString("# Any key can be overridden from the environment, e.g. PROBOOT_VCS_DEFAULT_BRANCH=trunk.\n")
	b.WriteString("\n")

	sections := []struct {
		comment string
		key     string
		value   interface{}
	}{
		{"# Version control. backend: exec (git binary) or embedded (built-in, no git needed).", "vcs", c.VCS},
		{"# Node templates (typescript, react-typescript). package_manager: pnpm or npm.", "node", c.Node},
		{"# Python template.", "python", c.Python},
		{"# Metadata written into generated manifests. version must be semver.", "project", c.Project},
		{"# Interactive mode. style: plain (line prompts) or form (terminal UI).", "prompt", c.Prompt},
	}
	for _, s := range sections {
		block, err := yaml.Marshal(map[string]interface{}{s.key: s.value})
		if err != nil {
			return "", fmt.Errorf("marshal %s: %w", s.key, err)
		}
		b.WriteString(s.comment + "\n")
		b.Write(block)
		b.WriteString("\n")
	}

	b.WriteString("# Per-template overrides. An empty default_branch passes no branch to git init.\n")
	if len(c.Templates) > 0 {
		block, err := yaml.Marshal(map[string]interface{}{"templates": c.Templates})
		if err != nil {
			return "", fmt.Errorf("marshal templates: %w", err)
		}
		b.Write(block)
	} else {
		b.WriteString("# templates:\n")
		b.WriteString("#   react-typescript:\n")
		b.WriteString("#     default_branch: \"\"\n")
	}

	return b.String(), nil
}

// WriteBootstrap writes the starter config to path. It creates parent
// directories as needed and refuses to overwrite an existing file.
func WriteBootstrap(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	content, err := RenderBootstrap(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
