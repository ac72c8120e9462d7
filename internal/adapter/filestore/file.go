// Package filestore holds the helpers shared by the file-backed repositories:
// whole-file JSON reads and atomic whole-file writes.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/minihosts/internal/domain"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ReadJSON decodes the whole file at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return MapError(err, path)
	}

	// Any decode failure, including a bad uuid inside a record, is a parse error.
	if err := json.Unmarshal(data, v); err != nil {
		return MapError(fmt.Errorf("%w: %v", domain.ErrParse, err), path)
	}
	return nil
}

// WriteJSON encodes v and atomically replaces the file at path.
func WriteJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return MapError(fmt.Errorf("encode: %w", err), path)
	}
	return WriteAtomic(path, data)
}

// WriteAtomic replaces the file at path with data. The content goes to a
// temporary file in the same directory first and is renamed over the target,
// so readers see either the old or the new content, never a partial write.
func WriteAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return MapError(err, dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return MapError(err, path)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return MapError(err, path)
	}
	if err = tmp.Sync(); err != nil {
		return MapError(err, path)
	}
	if err = tmp.Close(); err != nil {
		return MapError(err, path)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return MapError(err, path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return MapError(err, path)
	}
	return nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, MapError(err, path)
}
