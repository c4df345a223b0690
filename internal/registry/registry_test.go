package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/chaz8081/proboot/internal/config"
	"github.com/chaz8081/proboot/internal/console"
	"github.com/chaz8081/proboot/internal/engine"
	"github.com/chaz8081/proboot/internal/templates"
	"github.com/chaz8081/proboot/internal/vcs"
	"github.com/chaz8081/proboot/pkg/schema"
)

func TestLookup_CanonicalAndAliases(t *testing.T) {
	r := Default()
	cases := map[string]schema.ProjectType{
		"python":              schema.Python,
		"interpreted":         schema.Python,
		"typescript":          schema.TypeScript,
		"Typed-Scripting":     schema.TypeScript,
		"react-typescript":    schema.ReactTypeScript,
		"component-framework": schema.ReactTypeScript,
	}
	for id, want := range cases {
		tmpl, err := r.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", id, err)
		}
		if tmpl.Type() != want {
			t.Fatalf("Lookup(%q) = %s, want %s", id, tmpl.Type(), want)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Default().Lookup("cobol")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestLookup_KnownTypeNotRegistered(t *testing.T) {
	r := New(templates.Python{})
	if _, err := r.Lookup("typescript"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestList_MenuOrder(t *testing.T) {
	list := New(templates.ReactTypeScript{}, templates.Python{}, templates.TypeScript{}).List()
	if len(list) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(list))
	}
	for i, want := range schema.ProjectTypes {
		if list[i].Type() != want {
			t.Fatalf("List()[%d] = %s, want %s", i, list[i].Type(), want)
		}
	}
}

func TestSuggest(t *testing.T) {
	r := Default()
	cases := map[string]string{
		"pyhton": "python",
		"ts":     "typescript",
		"react":  "react-typescript",
		"interp": "interpreted",
		"cobol":  "",
		"":       "",
	}
	for in, want := range cases {
		if got := r.Suggest(in); got != want {
			t.Errorf("Suggest(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDispatch_UnsupportedHasNoSideEffects(t *testing.T) {
	rec := &engine.RecordingRunner{}
	env := templates.Env{
		Root:   t.TempDir(),
		Runner: rec,
		Repo:   vcs.NewExec(rec, "git"),
		Config: config.Default(),
		Out:    console.Discard(),
	}
	req := schema.BootstrapRequest{Name: "demo", Type: "cobol", InitVersionControl: true}

	err := Default().Dispatch(context.Background(), env, req)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if len(rec.Commands) != 0 {
		t.Fatalf("expected no commands, got %v", rec.Lines())
	}
}

func TestDispatch_RunsTemplate(t *testing.T) {
	rec := &engine.RecordingRunner{}
	env := templates.Env{
		Root:   t.TempDir(),
		Runner: rec,
		Repo:   vcs.NewExec(rec, "git"),
		Config: config.Default(),
		Out:    console.Discard(),
	}
	req := schema.BootstrapRequest{Name: "demo", Type: "component-framework"}

	if err := Default().Dispatch(context.Background(), env, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Lines(); len(got) != 2 || got[1] != "pnpm install" {
		t.Fatalf("unexpected commands: %v", got)
	}
}
