package observability

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/espn-soccer-reader/internal/config"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/logging"
)

func noopShutdown(context.Context) error { return nil }

// InitUptrace installs the global OpenTelemetry providers that the usecase and
// httpapi tracers report to. Without a DSN tracing stays on the no-op provider.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noopShutdown, nil
	case dsn == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.Bool("dataset.autocache", cfg.DataAutoCache),
			attribute.Int("dataset.loader_workers", cfg.DataLoaderWorkers),
		),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return func(ctx context.Context) error {
		if err := uptrace.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown uptrace: %w", err)
		}
		return nil
	}, nil
}
