package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var _ Provider = (*RedisProvider)(nil)

// RedisProvider 從 Redis list 讀取目錄，每個元素是一道食譜的 JSON
type RedisProvider struct {
	client redis.Cmdable
	key    string
}

// NewRedisClient 依設定建立 Redis 連線並測試連線
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisProvider 創建 Redis 目錄
func NewRedisProvider(client redis.Cmdable, key string) *RedisProvider {
	return &RedisProvider{client: client, key: key}
}

// All 以 LRANGE 讀取整份目錄，保留寫入順序
func (p *RedisProvider) All(ctx context.Context) ([]Recipe, error) {
	rows, err := p.client.LRange(ctx, p.key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		common.LogError("failed to load catalog from redis",
			zap.String("key", p.key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("load catalog from redis: %w", err)
	}

	return decodeRows(rows)
}

// Replace 以單一交易覆寫整份目錄
func (p *RedisProvider) Replace(ctx context.Context, recipes []Recipe) error {
	rows, err := encodeRows(recipes)
	if err != nil {
		return err
	}

	_, err = p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, p.key)
		if len(rows) > 0 {
			pipe.RPush(ctx, p.key, rows...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace catalog in redis: %w", err)
	}
	return nil
}

func encodeRows(recipes []Recipe) ([]interface{}, error) {
	rows := make([]interface{}, 0, len(recipes))
	for _, r := range recipes {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal recipe %d: %w", r.ID, err)
		}
		rows = append(rows, string(b))
	}
	return rows, nil
}

func decodeRows(rows []string) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(rows))
	for i, row := range rows {
		var r Recipe
		if err := common.ParseJSON(row, &r); err != nil {
			return nil, fmt.Errorf("unmarshal recipe at index %d: %w", i, err)
		}
		normalizeDifficulty(&r)
		recipes = append(recipes, r)
	}
	return recipes, nil
}
