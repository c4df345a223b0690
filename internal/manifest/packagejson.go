package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
)

// PackageJSON is the Node manifest file name.
const PackageJSON = "package.json"

// ErrNotObject is returned when a document or its "scripts" entry is not a JSON object.
var ErrNotObject = errors.New("not a JSON object")

// SetScript sets scripts.<name> to command in a package.json document and
// returns the re-indented result. The edit happens on the raw bytes, so every
// other key keeps its value and its position.
func SetScript(data []byte, name, command string) ([]byte, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("package.json: invalid JSON")
	}
	if _, typ, _, err := jsonparser.Get(data); err != nil || typ != jsonparser.Object {
		return nil, fmt.Errorf("package.json: document is %w", ErrNotObject)
	}
	if _, typ, _, err := jsonparser.Get(data, "scripts"); err == nil && typ != jsonparser.Object {
		return nil, fmt.Errorf("package.json: scripts is %w", ErrNotObject)
	}

	value, err := json.Marshal(command)
	if err != nil {
		return nil, err
	}
	// jsonparser.Set reuses the input's backing array.
	buf := append([]byte(nil), data...)
	out, err := jsonparser.Set(buf, value, "scripts", name)
	if err != nil {
		return nil, fmt.Errorf("package.json: set scripts.%s: %w", name, err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, bytes.TrimSpace(out), "", "  "); err != nil {
		return nil, fmt.Errorf("package.json: reformat: %w", err)
	}
	pretty.WriteByte('\n')
	return pretty.Bytes(), nil
}

// UpdateScript applies SetScript to the file at path in place.
func UpdateScript(path, name, command string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	out, err := SetScript(data, name, command)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
