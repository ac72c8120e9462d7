package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// Add creates a group that is switched on and returns its id. The detail
// storage is created before the record is saved, so a saved record never
// points at missing storage.
func (s *Service) Add(ctx context.Context, input AddGroupInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	name := domain.NormalizeGroupName(input.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.groups.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load groups: %w", err)
	}

	id, err := s.ids.Next(ctx, list.MaxID())
	if err != nil {
		return 0, fmt.Errorf("generate id: %w", err)
	}
	groupUUID := uuid.New()

	if err := s.details.Create(ctx, id, groupUUID); err != nil {
		return 0, fmt.Errorf("create group detail: %w", err)
	}

	list = append(list, domain.Group{
		ID:         id,
		UUID:       groupUUID,
		Name:       name,
		Status:     domain.StatusOn,
		Lifecycle:  domain.LifecycleActive,
		UpdateTime: s.unixNow(),
	})

	if err := s.groups.Save(ctx, list); err != nil {
		return 0, fmt.Errorf("save groups: %w", err)
	}

	s.log.InfoContext(ctx, "group added",
		slog.Int("group_id", id),
		slog.String("uuid", groupUUID.String()),
		slog.String("name", name),
	)

	return id, nil
}
