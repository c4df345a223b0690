// Package registry maps project-type identifiers to templates. The set is
// closed: it is built once at startup and never changes.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/chaz8081/proboot/internal/templates"
	"github.com/chaz8081/proboot/pkg/schema"
)

// ErrUnsupportedType is returned for identifiers outside the registry. Callers
// treat it as a soft failure.
var ErrUnsupportedType = errors.New("project type is not supported")

// Registry is a fixed set of templates keyed by canonical type.
type Registry struct {
	templates map[schema.ProjectType]templates.Template
}

// New builds a registry from ts. A later template with the same type replaces
// an earlier one.
func New(ts ...templates.Template) *Registry {
	r := &Registry{templates: make(map[schema.ProjectType]templates.Template, len(ts))}
	for _, t := range ts {
		r.templates[t.Type()] = t
	}
	return r
}

// Default returns the registry of every built-in template.
func Default() *Registry {
	return New(templates.Python{}, templates.TypeScript{}, templates.ReactTypeScript{})
}

// Lookup resolves a canonical identifier or alias.
func (r *Registry) Lookup(id string) (templates.Template, error) {
	t, ok := schema.ParseProjectType(id)
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnsupportedType)
	}
	tmpl, ok := r.templates[t]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnsupportedType)
	}
	return tmpl, nil
}

// List returns the registered templates in menu order.
func (r *Registry) List() []templates.Template {
	out := make([]templates.Template, 0, len(r.templates))
	for _, t := range schema.ProjectTypes {
		if tmpl, ok := r.templates[t]; ok {
			out = append(out, tmpl)
		}
	}
	return out
}

// Dispatch looks up req.Type and runs its template.
func (r *Registry) Dispatch(ctx context.Context, env templates.Env, req schema.BootstrapRequest) error {
	tmpl, err := r.Lookup(string(req.Type))
	if err != nil {
		return err
	}
	return tmpl.Bootstrap(ctx, env, req.Name, req.InitVersionControl)
}

// Suggest returns the known identifier closest to id, or "" when nothing is
// close enough.
func (r *Registry) Suggest(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	candidates := r.identifiers()

	ranks := fuzzy.RankFindFold(id, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(strings.ToLower(id), c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	limit := len(id) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist > limit {
		return ""
	}
	return best
}

// identifiers lists canonical names and aliases of registered templates.
func (r *Registry) identifiers() []string {
	var out []string
	for _, tmpl := range r.List() {
		out = append(out, string(tmpl.Type()))
		out = append(out, tmpl.Type().Aliases()...)
	}
	return out
}
