package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// ReplaceAll persists list exactly as given, typically after the user
// reordered or bulk-edited groups. Duplicate ids are not checked here, but a
// negative id or unknown status is a validation error and nothing is saved.
func (s *Service) ReplaceAll(ctx context.Context, list domain.GroupList) error {
	if err := validateList(list); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.groups.Save(ctx, list); err != nil {
		return fmt.Errorf("save groups: %w", err)
	}

	s.log.InfoContext(ctx, "groups replaced", slog.Int("count", len(list)))

	return nil
}
