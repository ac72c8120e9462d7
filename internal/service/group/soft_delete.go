package group

import (
	"context"
	"fmt"
	"log/slog"
)

// SoftDelete marks every live group with the given id as deleted, saves the
// list and then removes the group's detail storage. The record stays on disk.
// If the detail removal fails the error is returned but the saved deletion is
// kept. Deleting an unknown or already deleted id succeeds. Records that were
// already deleted keep their update time, so purge retention is not reset.
func (s *Service) SoftDelete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.groups.Load(ctx)
	if err != nil {
		return fmt.Errorf("load groups: %w", err)
	}

	now := s.unixNow()
	deleted := 0
	for i := range list {
		if list[i].ID == id && list[i].MarkDeleted(now) {
			deleted++
		}
	}

	if err := s.groups.Save(ctx, list); err != nil {
		return fmt.Errorf("save groups: %w", err)
	}

	if err := s.details.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete group detail: %w", err)
	}

	s.log.InfoContext(ctx, "group deleted",
		slog.Int("group_id", id),
		slog.Int("records", deleted),
	)

	return nil
}
