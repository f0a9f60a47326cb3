package memcache_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyager/internal/config"
	mem "voyager/pkg/memcache"
)

var Module = fx.Provide(provideToolsCache)

func provideToolsCache(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (mem.TTLStore, error) {
	var store mem.TTLStore
	switch cfg.ToolsCache {
	case "memory":
		store = mem.NewMemoryStore()
	case "badger":
		b, err := mem.OpenBadger(cfg.ToolsCacheDir)
		if err != nil {
			return nil, err
		}
		store = b
	default:
		return nil, fmt.Errorf("unsupported TOOLS_CACHE %q, use memory or badger", cfg.ToolsCache)
	}
	log.Info("Tool cache ready", zap.String("kind", cfg.ToolsCache))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}
