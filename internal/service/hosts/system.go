package hosts

import (
	"context"
	"fmt"
	"log/slog"
)

// ReadSystem returns the whole system hosts file.
func (s *Service) ReadSystem(ctx context.Context) (string, error) {
	content, err := s.file.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("read hosts: %w", err)
	}
	return content, nil
}

// UpdateSystem overwrites the whole system hosts file.
func (s *Service) UpdateSystem(ctx context.Context, content string) error {
	if err := s.file.Write(ctx, content); err != nil {
		return fmt.Errorf("write hosts: %w", err)
	}

	s.log.InfoContext(ctx, "system hosts updated", slog.Int("bytes", len(content)))
	return nil
}
