package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/minihosts/internal/config"
	"github.com/heartmarshall/minihosts/internal/transport/middleware"
	"github.com/heartmarshall/minihosts/internal/transport/rest"
)

// NewHandler builds the command API: routes plus the middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, svcs *Services, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	rest.NewGroupHandler(svcs.Groups, logger).Register(mux)
	rest.NewHostsHandler(svcs.Hosts, logger).Register(mux, limiter.Limit(cfg.Server.HostsWritesPerMinute))
	rest.NewHealthHandler(Version, map[string]rest.Check{
		"storage": func(ctx context.Context) error {
			_, err := svcs.GroupStore.Load(ctx)
			return err
		},
		"hosts": func(ctx context.Context) error {
			_, err := svcs.HostsFile.UpdateTime(ctx)
			return err
		},
	}).Register(mux)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
