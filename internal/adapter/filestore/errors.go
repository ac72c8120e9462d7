package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// MapError converts os and encoding/json errors to domain errors.
// The path is kept in the message so the host can show where it failed.
func MapError(err error, path string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrParse) || errors.Is(err, domain.ErrIO) {
		return fmt.Errorf("%s: %w", path, err)
	}

	// fs.ErrNotExist → domain.ErrNotFound
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%s: %w: %v", path, domain.ErrParse, err)
	}

	// Everything else is an I/O failure.
	return fmt.Errorf("%s: %w: %w", path, domain.ErrIO, err)
}
