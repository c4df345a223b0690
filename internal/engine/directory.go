package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDirectoryExists is returned when the project directory is already present.
// There is no merge-into-existing mode.
var ErrDirectoryExists = errors.New("directory already exists")

// DirPerm is the permission used for every directory the tool creates.
const DirPerm = 0o755

// FilePerm is the permission used for every file the tool writes.
const FilePerm = 0o644

// CreateProjectDirectory creates path and any missing parents. It fails with
// ErrDirectoryExists if anything already exists at path.
func CreateProjectDirectory(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrDirectoryExists)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, content, FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Touch creates an empty file at path if it does not exist, leaving existing
// content alone.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, FilePerm)
	if err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}
	return f.Close()
}
