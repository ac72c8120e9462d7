package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// Detail returns the rule text of a group.
func (s *Service) Detail(ctx context.Context, id int) (domain.GroupDetail, error) {
	d, err := s.details.Get(ctx, id)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("get group detail: %w", err)
	}
	return d, nil
}

// UpdateDetail replaces the rule text of a group.
// Returns domain.ErrNotFound if the group has no detail storage.
func (s *Service) UpdateDetail(ctx context.Context, input UpdateDetailInput) (domain.GroupDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.details.Get(ctx, input.ID)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("get group detail: %w", err)
	}

	d.Content = input.Content
	d.UpdateTime = s.unixNow()

	if err := s.details.Update(ctx, d); err != nil {
		return domain.GroupDetail{}, fmt.Errorf("update group detail: %w", err)
	}

	s.log.InfoContext(ctx, "group detail updated",
		slog.Int("group_id", input.ID),
		slog.Int("bytes", len(input.Content)),
	)

	return d, nil
}
