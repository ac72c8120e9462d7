package group

import (
	"context"
	"fmt"
	"log/slog"
)

// SetStatus switches a group on or off. An unknown or deleted id leaves the
// list unchanged and is not an error.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.groups.Load(ctx)
	if err != nil {
		return fmt.Errorf("load groups: %w", err)
	}

	matched := false
	for i := range list {
		if list[i].ID == input.ID && !list[i].IsDeleted() {
			list[i].SetStatus(input.Status, s.unixNow())
			matched = true
			break
		}
	}

	if err := s.groups.Save(ctx, list); err != nil {
		return fmt.Errorf("save groups: %w", err)
	}

	s.log.InfoContext(ctx, "group status set",
		slog.Int("group_id", input.ID),
		slog.String("status", input.Status.String()),
		slog.Bool("matched", matched),
	)

	return nil
}
