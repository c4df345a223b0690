// Package manifest builds and edits the build manifests of generated
// projects: pyproject.toml for Python and package.json for Node.
package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// PyProjectFile is the Python manifest file name.
const PyProjectFile = "pyproject.toml"

// PyProject is the subset of a PEP 621 pyproject.toml the Python template writes.
type PyProject struct {
	BuildSystem BuildSystem `toml:"build-system"`
	Project     Project     `toml:"project"`
}

// BuildSystem is the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Project is the [project] table.
type Project struct {
	Name           string            `toml:"name"`
	Version        string            `toml:"version"`
	Description    string            `toml:"description"`
	Authors        []Author          `toml:"authors,inline"`
	Readme         string            `toml:"readme"`
	RequiresPython string            `toml:"requires-python"`
	Scripts        map[string]string `toml:"scripts"`
}

// Author is one entry of project.authors.
type Author struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// PyProjectOptions carries the values that are not derived from the name.
type PyProjectOptions struct {
	Version        string
	Description    string
	AuthorName     string
	AuthorEmail    string
	RequiresPython string
}

// NewPyProject returns a setuptools-backed manifest for name whose console
// script `name` points at `name.main:main`.
func NewPyProject(name string, opts PyProjectOptions) *PyProject {
	return &PyProject{
		BuildSystem: BuildSystem{
			Requires:     []string{"setuptools>=45", "wheel"},
			BuildBackend: "setuptools.build_meta",
		},
		Project: Project{
			Name:           name,
			Version:        opts.Version,
			Description:    opts.Description,
			Authors:        []Author{{Name: opts.AuthorName, Email: opts.AuthorEmail}},
			Readme:         "README.md",
			RequiresPython: opts.RequiresPython,
			Scripts:        map[string]string{name: EntryPoint(name)},
		},
	}
}

// EntryPoint returns the console-script target for a package.
func EntryPoint(name string) string {
	return name + ".main:main"
}

// Encode renders p as TOML.
func (p *PyProject) Encode() ([]byte, error) {
	data, err := toml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode pyproject.toml: %w", err)
	}
	return data, nil
}

// DecodePyProject parses pyproject.toml content.
func DecodePyProject(data []byte) (*PyProject, error) {
	var p PyProject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pyproject.toml: %w", err)
	}
	return &p, nil
}
