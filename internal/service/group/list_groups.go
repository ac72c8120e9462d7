package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// List returns the visible groups in stored order. With includeSystem the
// synthetic system group is put first unless a stored group already has its id.
func (s *Service) List(ctx context.Context, includeSystem bool) (domain.GroupList, error) {
	list, err := s.groups.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}

	if includeSystem && !list.Contains(domain.SystemGroupID) {
		system, err := s.SystemGroup(ctx)
		if err != nil {
			return nil, err
		}
		list = append(domain.GroupList{system}, list...)
	}

	return list.Visible(), nil
}

// SystemGroup builds the virtual group standing for the OS hosts file. It is
// never persisted and gets a fresh uuid on every call.
func (s *Service) SystemGroup(ctx context.Context) (domain.Group, error) {
	updated, err := s.hosts.UpdateTime(ctx)
	if err != nil {
		return domain.Group{}, fmt.Errorf("hosts update time: %w", err)
	}

	return domain.Group{
		ID:         domain.SystemGroupID,
		UUID:       uuid.New(),
		Name:       domain.SystemGroupName,
		Status:     domain.StatusOn,
		Lifecycle:  domain.LifecycleActive,
		UpdateTime: updated,
	}, nil
}
