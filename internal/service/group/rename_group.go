package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// Rename changes the label of a group. An unknown or deleted id leaves the
// list unchanged and is not an error.
func (s *Service) Rename(ctx context.Context, input RenameGroupInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	name := domain.NormalizeGroupName(input.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.groups.Load(ctx)
	if err != nil {
		return fmt.Errorf("load groups: %w", err)
	}

	matched := false
	for i := range list {
		if list[i].ID == input.ID && !list[i].IsDeleted() {
			list[i].Rename(name, s.unixNow())
			matched = true
			break
		}
	}

	if err := s.groups.Save(ctx, list); err != nil {
		return fmt.Errorf("save groups: %w", err)
	}

	s.log.InfoContext(ctx, "group renamed",
		slog.Int("group_id", input.ID),
		slog.String("name", name),
		slog.Bool("matched", matched),
	)

	return nil
}
