package catalog

import (
	"context"
	"fmt"
	"os"

	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"go.uber.org/zap"
)

// Open 依 catalog.source 建立目錄來源，回傳的 close 函式必須在結束時呼叫。
// memory 來源在啟動時讀取一次 catalog.path，之後不再重新讀檔。
func Open(ctx context.Context, cfg config.CatalogConfig) (Provider, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case config.CatalogSourceFile, "":
		common.LogInfo("Using file catalog", zap.String("path", cfg.Path))
		return NewFileProvider(cfg.Path), noop, nil

	case config.CatalogSourceRedis:
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		common.LogInfo("Using redis catalog",
			zap.String("addr", cfg.Redis.Addr),
			zap.String("key", cfg.Redis.Key),
		)
		return NewRedisProvider(client, cfg.Redis.Key), client.Close, nil

	case config.CatalogSourceMemory:
		var recipes []Recipe
		if cfg.Path != "" {
			data, err := os.ReadFile(cfg.Path)
			if err != nil {
				return nil, nil, fmt.Errorf("read catalog file %s: %w", cfg.Path, err)
			}
			if recipes, err = Decode(data); err != nil {
				return nil, nil, fmt.Errorf("parse catalog file %s: %w", cfg.Path, err)
			}
		}
		common.LogInfo("Using in-memory catalog", zap.Int("recipes", len(recipes)))
		return NewMemoryProvider(recipes), noop, nil

	default:
		return nil, nil, fmt.Errorf("unsupported catalog source: %s", cfg.Source)
	}
}
