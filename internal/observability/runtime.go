package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/riskibarqy/espn-soccer-reader/internal/config"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/logging"
)

// Runtime holds the started tracing, profiling and pprof components.
type Runtime struct {
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprofServer     *http.Server
	logger          *logging.Logger
}

// Start brings up uptrace, pyroscope and pprof in that order. A failing step
// shuts down whatever already started.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, err
	}
	rt.shutdownTracing = shutdownTracing

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		return nil, errors.Join(err, rt.Shutdown(ctx))
	}
	rt.stopProfiler = stopProfiler

	srv, err := StartPprofServer(cfg, logger)
	if err != nil {
		return nil, errors.Join(err, rt.Shutdown(ctx))
	}
	rt.pprofServer = srv

	return rt, nil
}

// Shutdown stops components in reverse start order and reports every failure.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs []error
	if err := StopPprofServer(ctx, r.pprofServer, r.logger); err != nil {
		errs = append(errs, err)
	}
	if r.stopProfiler != nil {
		if err := r.stopProfiler(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
