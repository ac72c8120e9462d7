// Package grouplist implements the group record store: the whole ordered list
// of groups kept in a single JSON file that is always read and rewritten in full.
package grouplist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/minihosts/internal/adapter/filestore"
	"github.com/heartmarshall/minihosts/internal/domain"
)

// record is the persisted shape of a group. Field names are part of the
// on-disk format and must not change.
type record struct {
	Name       string        `json:"name"`
	ID         int           `json:"id"`
	UUID       uuid.UUID     `json:"uuid"`
	Status     domain.Status `json:"status"`
	IsDelete   bool          `json:"isDelete"`
	UpdateTime int64         `json:"updateTime"`
}

// Repo provides group list persistence backed by one file.
type Repo struct {
	path string
}

// New creates a repository over the file at path.
func New(path string) *Repo {
	return &Repo{path: path}
}

// Path returns the backing file location.
func (r *Repo) Path() string {
	return r.path
}

// Init creates an empty list if the backing file does not exist yet.
// An existing file is left untouched.
func (r *Repo) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := filestore.Exists(r.path)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return filestore.WriteAtomic(r.path, []byte("[]"))
}

// Load reads the full persisted list, soft-deleted groups included.
// Returns domain.ErrNotFound if the file is absent and domain.ErrParse if
// its content is not a well-formed group list.
func (r *Repo) Load(ctx context.Context) (domain.GroupList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []record
	if err := filestore.ReadJSON(r.path, &rows); err != nil {
		return nil, err
	}

	list := make(domain.GroupList, 0, len(rows))
	for i, row := range rows {
		g, err := toDomain(row)
		if err != nil {
			return nil, filestore.MapError(fmt.Errorf("record %d: %w", i, err), r.path)
		}
		list = append(list, g)
	}
	return list, nil
}

// Save atomically replaces the file with the given list. A list that Load
// would reject is refused with domain.ErrParse and the file is left as is.
func (r *Repo) Save(ctx context.Context, list domain.GroupList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([]record, 0, len(list))
	for i, g := range list {
		row := toRecord(g)
		if err := checkRecord(row); err != nil {
			return filestore.MapError(fmt.Errorf("record %d: %w", i, err), r.path)
		}
		rows = append(rows, row)
	}
	return filestore.WriteJSON(r.path, rows)
}

func checkRecord(row record) error {
	if !row.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrParse, row.Status)
	}
	if row.ID < 0 {
		return fmt.Errorf("%w: negative id %d", domain.ErrParse, row.ID)
	}
	return nil
}

func toDomain(row record) (domain.Group, error) {
	if err := checkRecord(row); err != nil {
		return domain.Group{}, err
	}
	return domain.Group{
		ID:         row.ID,
		UUID:       row.UUID,
		Name:       row.Name,
		Status:     row.Status,
		Lifecycle:  domain.LifecycleFromFlag(row.IsDelete),
		UpdateTime: row.UpdateTime,
	}, nil
}

func toRecord(g domain.Group) record {
	return record{
		Name:       g.Name,
		ID:         g.ID,
		UUID:       g.UUID,
		Status:     g.Status,
		IsDelete:   g.IsDeleted(),
		UpdateTime: g.UpdateTime,
	}
}
