package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectType identifies one of the closed set of project templates.
type ProjectType string

const (
	Python          ProjectType = "python"
	TypeScript      ProjectType = "typescript"
	ReactTypeScript ProjectType = "react-typescript"
)

// ProjectTypes lists the supported types in menu order. The first entry is the
// default for the --type flag and for an empty menu selection.
var ProjectTypes = []ProjectType{Python, TypeScript, ReactTypeScript}

// DefaultProjectType is the type used when none is given.
var DefaultProjectType = ProjectTypes[0]

// typeAliases maps the generic template names onto the canonical identifiers.
var typeAliases = map[string]ProjectType{
	"interpreted":         Python,
	"typed-scripting":     TypeScript,
	"component-framework": ReactTypeScript,
}

// Aliases returns the alternate identifiers accepted for t.
func (t ProjectType) Aliases() []string {
	var out []string
	for alias, target := range typeAliases {
		if target == t {
			out = append(out, alias)
		}
	}
	return out
}

func (t ProjectType) String() string { return string(t) }

// ParseProjectType resolves an identifier or alias (case-insensitive) to its
// canonical ProjectType. The second return value is false for identifiers
// outside the closed set.
func ParseProjectType(s string) (ProjectType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range ProjectTypes {
		if string(t) == key {
			return t, true
		}
	}
	if t, ok := typeAliases[key]; ok {
		return t, true
	}
	return ProjectType(s), false
}

// Identifiers returns every accepted identifier: canonical names first, then aliases.
func Identifiers() []string {
	out := make([]string, 0, len(ProjectTypes)+len(typeAliases))
	for _, t := range ProjectTypes {
		out = append(out, string(t))
	}
	for _, t := range ProjectTypes {
		out = append(out, t.Aliases()...)
	}
	return out
}

// ErrInvalidName is returned for project names that cannot name a directory.
var ErrInvalidName = errors.New("invalid project name")

// BootstrapRequest is the validated input driving a single run.
type BootstrapRequest struct {
	Name               string
	Type               ProjectType
	InitVersionControl bool
}

// ValidateName checks that name is non-empty and a single path element.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: project name cannot be empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}
	return nil
}

// Validate checks the request's name. The type is not checked here: an
// unknown type is reported by the registry as a soft failure.
func (r BootstrapRequest) Validate() error {
	return ValidateName(r.Name)
}
