package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyager/internal/config"
	"voyager/internal/repositories"
	"voyager/internal/services"
	"voyager/internal/telemetry"
)

var Module = fx.Options(
	fx.Provide(provideCatalogService),
	fx.Invoke(reloadOnStart))

func provideCatalogService(
	repo repositories.POIRepository,
	cfg config.Config,
	log *zap.Logger,
	metrics *telemetry.Metrics,
) services.CatalogServiceInterface {
	return services.NewCatalogService(repo, cfg.CatalogFile, log, metrics)
}

// A failed load is logged by the service; the embedded catalog stays active.
func reloadOnStart(lc fx.Lifecycle, svc services.CatalogServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = svc.Reload(ctx)
			return nil
		},
	})
}
