package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyager/internal/config"
	"voyager/internal/infra"
	"voyager/internal/repositories"
)

var Module = fx.Provide(
	providePOIRepo)

// providePOIRepo returns nil without POSTGRES_URL; the catalog then comes
// from CATALOG_FILE or the embedded default.
func providePOIRepo(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (repositories.POIRepository, error) {
	if cfg.PostgresURL == "" {
		log.Info("POSTGRES_URL not set, catalog table disabled")
		return nil, nil
	}
	db, err := infra.OpenPostgres(cfg.PostgresURL, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return repositories.NewPOIRepository(db), nil
}
