package group

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minihosts/internal/domain"
)

type groupRepo interface {
	Load(ctx context.Context) (domain.GroupList, error)
	Save(ctx context.Context, list domain.GroupList) error
}

type idSequence interface {
	Next(ctx context.Context, floor int) (int, error)
}

type detailRepo interface {
	Create(ctx context.Context, id int, groupUUID uuid.UUID) error
	Get(ctx context.Context, id int) (domain.GroupDetail, error)
	Update(ctx context.Context, detail domain.GroupDetail) error
	Delete(ctx context.Context, id int) error
}

type hostsClock interface {
	UpdateTime(ctx context.Context) (int64, error)
}

const (
	MaxNameLength = 100
)

// Service is the group registry. Every mutation loads the whole list,
// changes it in memory and saves it back.
type Service struct {
	groups  groupRepo
	ids     idSequence
	details detailRepo
	hosts   hostsClock
	log     *slog.Logger
	now     func() time.Time

	// mu serialises read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewService creates a new group registry.
func NewService(
	log *slog.Logger,
	groups groupRepo,
	ids idSequence,
	details detailRepo,
	hosts hostsClock,
) *Service {
	return &Service{
		groups:  groups,
		ids:     ids,
		details: details,
		hosts:   hosts,
		log:     log.With("service", "group"),
		now:     time.Now,
	}
}

func (s *Service) unixNow() int64 {
	return s.now().Unix()
}
