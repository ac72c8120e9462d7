// Package idseq issues group ids from a counter persisted next to the group list.
package idseq

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/minihosts/internal/adapter/filestore"
	"github.com/heartmarshall/minihosts/internal/domain"
)

// Sequence is a monotonic id counter stored as a decimal number in one file.
type Sequence struct {
	path string
}

// New creates a sequence over the file at path. A missing file counts as 0.
func New(path string) *Sequence {
	return &Sequence{path: path}
}

// Next returns max(last issued, floor) + 1 and persists it before returning.
// floor is the largest id the caller already knows of, so an id is never
// reused even if the counter file was lost or the list replaced in bulk.
func (s *Sequence) Next(ctx context.Context, floor int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	last, err := s.current()
	if err != nil {
		return 0, err
	}

	next := max(last, floor) + 1
	if err := filestore.WriteAtomic(s.path, []byte(strconv.Itoa(next))); err != nil {
		return 0, err
	}
	return next, nil
}

// Current returns the last issued id, 0 if none was issued yet.
func (s *Sequence) Current(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.current()
}

func (s *Sequence) current() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, filestore.MapError(err, s.path)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, filestore.MapError(fmt.Errorf("%w: counter %q", domain.ErrParse, raw), s.path)
	}
	return n, nil
}
