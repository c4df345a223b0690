package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const npmInitOutput = `{
  "name": "demo",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC",
  "devDependencies": {
    "typescript": "^5.4.0"
  }
}
`

func decode(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestSetScript_PreservesEveryOtherKey(t *testing.T) {
	before := decode(t, []byte(npmInitOutput))

	out, err := SetScript([]byte(npmInitOutput), "build", "tsc")
	require.NoError(t, err)
	after := decode(t, out)

	for k, v := range before {
		if k == "scripts" {
			continue
		}
		assert.Equal(t, v, after[k], "key %q changed", k)
	}
	assert.Len(t, after, len(before))

	scripts := after["scripts"].(map[string]interface{})
	assert.Equal(t, "tsc", scripts["build"])
	assert.Equal(t, `echo "Error: no test specified" && exit 1`, scripts["test"])
}

func TestSetScript_KeepsKeyOrder(t *testing.T) {
	out, err := SetScript([]byte(npmInitOutput), "build", "tsc")
	require.NoError(t, err)
	text := string(out)

	keys := []string{`"name"`, `"version"`, `"main"`, `"scripts"`, `"keywords"`, `"license"`, `"devDependencies"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(text, k)
		require.NotEqual(t, -1, i, k)
		assert.Greater(t, i, last, "%s out of order", k)
		last = i
	}
	assert.True(t, strings.HasSuffix(text, "}\n"))
	assert.Contains(t, text, "\n  \"name\": \"demo\",")
}

func TestSetScript_SingleTrailingNewline(t *testing.T) {
	for _, in := range []string{
		npmInitOutput,
		"{\n  \"name\": \"demo\"\n}\n",
		"{\"name\":\"demo\"}",
		"{\"name\":\"demo\"}\n\n",
	} {
		out, err := SetScript([]byte(in), "build", "tsc")
		require.NoError(t, err)
		text := string(out)
		assert.True(t, strings.HasSuffix(text, "}\n"), "input %q", in)
		assert.False(t, strings.HasSuffix(text, "\n\n"), "input %q", in)
	}
}

func TestSetScript_OverwritesExistingBuild(t *testing.T) {
	in := `{"name":"demo","scripts":{"build":"webpack","lint":"eslint ."}}`

	out, err := SetScript([]byte(in), "build", "tsc")
	require.NoError(t, err)

	scripts := decode(t, out)["scripts"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"build": "tsc", "lint": "eslint ."}, scripts)
}

func TestSetScript_AddsMissingScripts(t *testing.T) {
	out, err := SetScript([]byte(`{"name":"demo","version":"1.0.0"}`), "build", "tsc")
	require.NoError(t, err)

	m := decode(t, out)
	assert.Equal(t, "demo", m["name"])
	assert.Equal(t, "1.0.0", m["version"])
	assert.Equal(t, map[string]interface{}{"build": "tsc"}, m["scripts"])
}

func TestSetScript_EmptyScriptsObject(t *testing.T) {
	out, err := SetScript([]byte(`{"name":"demo","scripts":{}}`), "build", "tsc")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"build": "tsc"}, decode(t, out)["scripts"])
}

func TestSetScript_DoesNotMutateInput(t *testing.T) {
	in := []byte(npmInitOutput)
	_, err := SetScript(in, "build", "tsc")
	require.NoError(t, err)
	assert.Equal(t, npmInitOutput, string(in))
}

func TestSetScript_Rejects(t *testing.T) {
	_, err := SetScript([]byte(`{"name":`), "build", "tsc")
	assert.Error(t, err)

	_, err = SetScript([]byte(`["a"]`), "build", "tsc")
	assert.True(t, errors.Is(err, ErrNotObject))

	_, err = SetScript([]byte(`{"scripts":"tsc"}`), "build", "tsc")
	assert.True(t, errors.Is(err, ErrNotObject))
}

func TestUpdateScript_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), PackageJSON)
	require.NoError(t, os.WriteFile(path, []byte(npmInitOutput), 0o644))

	require.NoError(t, UpdateScript(path, "build", "tsc"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	scripts := decode(t, data)["scripts"].(map[string]interface{})
	assert.Equal(t, "tsc", scripts["build"])
}

func TestUpdateScript_MissingFile(t *testing.T) {
	err := UpdateScript(filepath.Join(t.TempDir(), PackageJSON), "build", "tsc")
	assert.Error(t, err)
}
