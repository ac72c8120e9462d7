package hosts

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/minihosts/internal/domain"
)

type groupLister interface {
	List(ctx context.Context, includeSystem bool) (domain.GroupList, error)
}

type detailReader interface {
	Detail(ctx context.Context, id int) (domain.GroupDetail, error)
}

type hostsFile interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, content string) error
	ApplySection(ctx context.Context, body string) error
}

// Service reads and writes the system hosts file and merges enabled groups
// into its managed section.
type Service struct {
	groups      groupLister
	details     detailReader
	file        hostsFile
	concurrency int
	log         *slog.Logger
}

// NewService creates a new hosts service. concurrency bounds the number of
// detail loads in flight during Apply; values below one mean one.
func NewService(
	log *slog.Logger,
	groups groupLister,
	details detailReader,
	file hostsFile,
	concurrency int,
) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		groups:      groups,
		details:     details,
		file:        file,
		concurrency: concurrency,
		log:         log.With("service", "hosts"),
	}
}
