package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/stones/internal/apperror"
)

type redisSave struct {
	client *redis.Client
}

func NewRedisSaveRepository(client *redis.Client) SaveRepository {
	return &redisSave{
		client: client,
	}
}

func (that *redisSave) Save(ctx context.Context, name string, data []byte) error {
	err := that.client.Set(ctx, saveKey(name), data, 0).Err()
	if err != nil {
		return fmt.Errorf("%w: failed to set save: %w", apperror.ErrPersistence, err)
	}

	return nil
}

func (that *redisSave) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := that.client.Get(ctx, saveKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to get save: %w", apperror.ErrPersistence, err)
	}

	return data, nil
}

func saveKey(name string) string {
	return "save:" + name
}
