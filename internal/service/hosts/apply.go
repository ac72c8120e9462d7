package hosts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// ApplyResult reports what Apply wrote.
type ApplyResult struct {
	Applied int `json:"applied"`
}

// Apply writes the rule text of every enabled group into the managed section
// of the hosts file, in list order. Each group is introduced by a "# <name>"
// line. A group without detail storage contributes only its header. With no
// enabled groups the managed section is removed.
func (s *Service) Apply(ctx context.Context) (ApplyResult, error) {
	list, err := s.groups.List(ctx, false)
	if err != nil {
		return ApplyResult{}, fmt.Errorf("list groups: %w", err)
	}

	enabled := make(domain.GroupList, 0, len(list))
	for _, grp := range list {
		if grp.IsEnabled() {
			enabled = append(enabled, grp)
		}
	}

	contents := make([]string, len(enabled))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, grp := range enabled {
		g.Go(func() error {
			d, err := s.details.Detail(gctx, grp.ID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					s.log.WarnContext(gctx, "enabled group has no detail",
						slog.Int("group_id", grp.ID),
					)
					return nil
				}
				return fmt.Errorf("load detail of group %d: %w", grp.ID, err)
			}
			contents[i] = d.Content
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ApplyResult{}, err
	}

	body := mergeSection(enabled, contents)
	if err := s.file.ApplySection(ctx, body); err != nil {
		return ApplyResult{}, fmt.Errorf("apply hosts section: %w", err)
	}

	s.log.InfoContext(ctx, "hosts applied", slog.Int("groups", len(enabled)))

	return ApplyResult{Applied: len(enabled)}, nil
}

// mergeSection joins group contents into one section body, separating groups
// with a blank line. Header names are flattened to a single line.
func mergeSection(groups domain.GroupList, contents []string) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("# ")
		b.WriteString(domain.NormalizeGroupName(g.Name))
		if c := strings.TrimRight(contents[i], "\r\n \t"); c != "" {
			b.WriteString("\n")
			b.WriteString(c)
		}
	}
	return b.String()
}
