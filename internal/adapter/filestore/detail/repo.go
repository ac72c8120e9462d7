// Package detail stores the rule text of each group, one JSON file per group id.
package detail

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/minihosts/internal/adapter/filestore"
	"github.com/heartmarshall/minihosts/internal/domain"
)

type record struct {
	ID         int       `json:"id"`
	UUID       uuid.UUID `json:"uuid"`
	Content    string    `json:"content"`
	UpdateTime int64     `json:"updateTime"`
}

// Repo provides per-group detail persistence under one directory.
type Repo struct {
	dir string
	now func() int64
}

// New creates a repository rooted at dir. now supplies Unix seconds.
func New(dir string, now func() int64) *Repo {
	return &Repo{dir: dir, now: now}
}

func (r *Repo) path(id int) string {
	return filepath.Join(r.dir, strconv.Itoa(id)+".json")
}

// Create initialises empty detail storage for a new group. A stale file left
// behind by an interrupted add is overwritten.
func (r *Repo) Create(ctx context.Context, id int, groupUUID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return filestore.WriteJSON(r.path(id), record{
		ID:         id,
		UUID:       groupUUID,
		Content:    "",
		UpdateTime: r.now(),
	})
}

// Get returns the detail of a group.
// Returns domain.ErrNotFound if the group has no detail file.
func (r *Repo) Get(ctx context.Context, id int) (domain.GroupDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.GroupDetail{}, err
	}

	var row record
	if err := filestore.ReadJSON(r.path(id), &row); err != nil {
		return domain.GroupDetail{}, fmt.Errorf("group detail %d: %w", id, err)
	}
	return domain.GroupDetail{
		ID:         row.ID,
		UUID:       row.UUID,
		Content:    row.Content,
		UpdateTime: row.UpdateTime,
	}, nil
}

// Update overwrites an existing detail.
// Returns domain.ErrNotFound if the group has no detail file.
func (r *Repo) Update(ctx context.Context, d domain.GroupDetail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := filestore.Exists(r.path(d.ID))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("group detail %d: %w", d.ID, domain.ErrNotFound)
	}

	return filestore.WriteJSON(r.path(d.ID), record{
		ID:         d.ID,
		UUID:       d.UUID,
		Content:    d.Content,
		UpdateTime: d.UpdateTime,
	})
}

// Delete removes the detail of a group. A missing file is not an error.
func (r *Repo) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(r.path(id))
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return filestore.MapError(err, r.path(id))
}
