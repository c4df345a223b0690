package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaz8081/proboot/internal/engine"
	"github.com/chaz8081/proboot/internal/manifest"
	"github.com/chaz8081/proboot/pkg/schema"
)

// resettableFlags are restored to their defaults after every executeRoot.
var resettableFlags = []string{"type", "no-vcs", "no-git", "default-branch", "dir", "config", "verbose"}

func resetFlags() {
	for _, name := range resettableFlags {
		f := rootCmd.Flags().Lookup(name)
		if f == nil {
			f = rootCmd.PersistentFlags().Lookup(name)
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
}

// setupCLI isolates config lookup and replaces the process runner.
func setupCLI(t *testing.T, hook func(engine.Command) error) *engine.RecordingRunner {
	t.Helper()
	color.NoColor = true
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rec := &engine.RecordingRunner{Hook: hook}
	originalRunner := newRunner
	originalTTY := isInteractiveTTY
	t.Cleanup(func() {
		newRunner = originalRunner
		isInteractiveTTY = originalTTY
	})
	newRunner = func() engine.Runner { return rec }
	isInteractiveTTY = func() bool { return false }
	return rec
}

func executeRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func fakeNodeInit(cmd engine.Command) error {
	if cmd.Name != "git" && len(cmd.Args) > 0 && cmd.Args[0] == "init" {
		return os.WriteFile(filepath.Join(cmd.Dir, manifest.PackageJSON), []byte(`{"name":"demo"}`), engine.FilePerm)
	}
	return nil
}

func TestFlagMode_TypedScriptingWithoutVCS(t *testing.T) {
	rec := setupCLI(t, fakeNodeInit)
	dir := t.TempDir()

	_, _, err := executeRoot(t, "", "demo", "--type", "typed-scripting", "--no-vcs", "-C", dir)

	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count("git"))
	assert.Equal(t, "pnpm init", rec.Lines()[0])
	assert.DirExists(t, filepath.Join(dir, "demo"))
}

func TestFlagMode_DefaultsToPythonWithGit(t *testing.T) {
	rec := setupCLI(t, nil)
	dir := t.TempDir()

	out, _, err := executeRoot(t, "", "demo", "-C", dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"python3 -m venv venv",
		"git init --initial-branch=main",
	}, rec.Lines())
	assert.Contains(t, out, "Created project directory: demo")
}

func TestFlagMode_NoGitAlias(t *testing.T) {
	rec := setupCLI(t, nil)

	_, _, err := executeRoot(t, "", "demo", "--no-git", "-C", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count("git"))
}

func TestFlagMode_DefaultBranchFlagWins(t *testing.T) {
	rec := setupCLI(t, nil)
	t.Setenv("PROBOOT_VCS_DEFAULT_BRANCH", "develop")

	_, _, err := executeRoot(t, "", "demo", "--type", "component-framework", "--default-branch", "trunk", "-C", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "git init --initial-branch=trunk", rec.Lines()[2])
}

func TestFlagMode_EnvBranch(t *testing.T) {
	rec := setupCLI(t, nil)
	t.Setenv("PROBOOT_VCS_DEFAULT_BRANCH", "develop")

	_, _, err := executeRoot(t, "", "demo", "-t", "react-typescript", "-C", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "git init --initial-branch=develop", rec.Lines()[2])
}

func TestFlagMode_EmptyEnvBranchOmitsFlag(t *testing.T) {
	rec := setupCLI(t, nil)
	t.Setenv("PROBOOT_VCS_DEFAULT_BRANCH", "")

	_, _, err := executeRoot(t, "", "demo", "-t", "react-typescript", "-C", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "git init", rec.Lines()[2])
}

func TestFlagMode_UnsupportedTypeIsSoftFailure(t *testing.T) {
	rec := setupCLI(t, nil)
	dir := t.TempDir()

	out, _, err := executeRoot(t, "", "demo", "--type", "pyton", "-C", dir)

	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
	assert.Contains(t, out, "Project type pyton is not supported yet.")
	assert.Contains(t, out, `Did you mean "python"?`)
	assert.Empty(t, rec.Commands)
	assert.NoDirExists(t, filepath.Join(dir, "demo"))
}

func TestFlagMode_ExistingDirectoryExitsOne(t *testing.T) {
	rec := setupCLI(t, nil)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "demo"), engine.DirPerm))

	_, _, err := executeRoot(t, "", "demo", "-C", dir)

	require.ErrorIs(t, err, engine.ErrDirectoryExists)
	assert.Contains(t, err.Error(), filepath.Join(dir, "demo"))
	assert.Equal(t, 1, ExitCode(err))
	assert.Empty(t, rec.Commands)
}

func TestFlagMode_ProcessFailurePropagatesExitCode(t *testing.T) {
	setupCLI(t, func(cmd engine.Command) error {
		return &engine.ProcessError{Command: cmd, ExitCode: 7, Err: errors.New("exit status 7")}
	})

	_, _, err := executeRoot(t, "", "demo", "-C", t.TempDir())

	require.Error(t, err)
	assert.Equal(t, 7, ExitCode(err))
}

func TestFlagMode_NameRequired(t *testing.T) {
	setupCLI(t, nil)

	_, _, err := executeRoot(t, "", "--no-vcs")

	require.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, 1, ExitCode(err))
}

func TestFlagMode_RejectsPathLikeName(t *testing.T) {
	rec := setupCLI(t, nil)

	_, _, err := executeRoot(t, "", "a/b", "-C", t.TempDir())

	require.ErrorIs(t, err, schema.ErrInvalidName)
	assert.Empty(t, rec.Commands)
}

func TestInteractiveMode_FeedsRequest(t *testing.T) {
	rec := setupCLI(t, nil)
	dir := t.TempDir()

	out, _, err := executeRoot(t, "\nmyproj\n\nn\n", "-C", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Project name cannot be empty. Please enter a valid name: ")
	assert.Contains(t, out, "1. python\n2. typescript\n3. react-typescript\n")
	assert.DirExists(t, filepath.Join(dir, "myproj"))
	assert.Equal(t, []string{"python3 -m venv venv"}, rec.Lines())
}

func TestInteractiveMode_VerboseDoesNotSelectFlagMode(t *testing.T) {
	setupCLI(t, nil)

	_, errOut, err := executeRoot(t, "myproj\n2\ny\n", "-v", "-C", t.TempDir())

	// typescript needs package.json from the package manager, which the
	// recorder does not create.
	require.Error(t, err)
	assert.Contains(t, errOut, "[proboot] mode: interactive")
}

func TestInteractiveMode_ClosedInput(t *testing.T) {
	setupCLI(t, nil)

	_, _, err := executeRoot(t, "", "-C", t.TempDir())

	require.ErrorIs(t, err, ErrInputClosed)
}

func TestRoot_InvalidConfigFails(t *testing.T) {
	setupCLI(t, nil)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("node:\n  package_manager: yarn\n"), 0o644))

	_, _, err := executeRoot(t, "", "demo", "--config", path, "-C", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "package_manager")
}

func TestRoot_EmbeddedBackendCreatesRepository(t *testing.T) {
	rec := setupCLI(t, nil)
	t.Setenv("PROBOOT_VCS_BACKEND", "embedded")
	dir := t.TempDir()

	_, _, err := executeRoot(t, "", "demo", "-C", dir)

	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count("git"))
	assert.DirExists(t, filepath.Join(dir, "demo", ".git"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(&engine.ProcessError{ExitCode: 0}))
	assert.Equal(t, 2, ExitCode(&engine.ProcessError{ExitCode: 2}))
}
