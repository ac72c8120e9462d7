package group

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// PurgeDeleted physically removes soft-deleted records last touched before
// threshold and returns how many were removed. Detail removal is retried for
// each purged id since an earlier SoftDelete may have failed half-way.
// Removed ids are still never reissued. An id still carried by a kept record
// keeps its detail storage.
func (s *Service) PurgeDeleted(ctx context.Context, threshold time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.groups.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load groups: %w", err)
	}

	cutoff := threshold.Unix()
	kept := make(domain.GroupList, 0, len(list))
	var purged []int
	for _, g := range list {
		if g.IsDeleted() && g.UpdateTime < cutoff {
			purged = append(purged, g.ID)
			continue
		}
		kept = append(kept, g)
	}

	if len(purged) == 0 {
		return 0, nil
	}

	if err := s.groups.Save(ctx, kept); err != nil {
		return 0, fmt.Errorf("save groups: %w", err)
	}

	for _, id := range purged {
		if kept.Contains(id) {
			continue
		}
		if err := s.details.Delete(ctx, id); err != nil {
			return len(purged), fmt.Errorf("delete group detail %d: %w", id, err)
		}
	}

	s.log.InfoContext(ctx, "deleted groups purged",
		slog.Int("purged", len(purged)),
		slog.Time("threshold", threshold),
	)

	return len(purged), nil
}
