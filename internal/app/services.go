package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/minihosts/internal/adapter/filestore/detail"
	"github.com/heartmarshall/minihosts/internal/adapter/filestore/grouplist"
	"github.com/heartmarshall/minihosts/internal/adapter/filestore/idseq"
	"github.com/heartmarshall/minihosts/internal/adapter/hostsfile"
	"github.com/heartmarshall/minihosts/internal/config"
	"github.com/heartmarshall/minihosts/internal/service/group"
	"github.com/heartmarshall/minihosts/internal/service/hosts"
)

// Services bundles the wired application services and the adapters the
// health checks probe.
type Services struct {
	Groups *group.Service
	Hosts  *hosts.Service

	GroupStore *grouplist.Repo
	HostsFile  *hostsfile.File
}

// NewServices wires adapters and services from cfg and makes sure the group
// list file exists.
func NewServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	groupStore := grouplist.New(cfg.Storage.GroupListPath())
	if err := groupStore.Init(ctx); err != nil {
		return nil, fmt.Errorf("init group list: %w", err)
	}

	ids := idseq.New(cfg.Storage.IDSeqPath())
	details := detail.New(cfg.Storage.DetailDir(), func() int64 { return time.Now().Unix() })
	hostsFile := hostsfile.New(cfg.Hosts.Path, logger)

	groupSvc := group.NewService(logger, groupStore, ids, details, hostsFile)
	hostsSvc := hosts.NewService(logger, groupSvc, groupSvc, hostsFile, cfg.Hosts.ApplyConcurrency)

	return &Services{
		Groups:     groupSvc,
		Hosts:      hostsSvc,
		GroupStore: groupStore,
		HostsFile:  hostsFile,
	}, nil
}
