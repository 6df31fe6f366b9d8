package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores the result as a JSON value under Key.
type Redis struct {
	cmd redis.Cmdable
	key string
	// closer is nil when the client is owned by the caller.
	closer func() error
}

// OpenRedis connects to the Redis server at addr and checks it is reachable.
func OpenRedis(ctx context.Context, addr string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &Redis{cmd: client, key: Key, closer: client.Close}, nil
}

// NewRedis wraps an existing client. Close does not close it.
func NewRedis(cmd redis.Cmdable, key string) *Redis {
	if key == "" {
		key = Key
	}
	return &Redis{cmd: cmd, key: key}
}

func (r *Redis) Put(ctx context.Context, res *Result) error {
	if err := res.Validate(); err != nil {
		return err
	}
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := r.cmd.Set(ctx, r.key, val, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context) (*Result, error) {
	val, err := r.cmd.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.key, err)
	}
	res, err := ParseResult(val)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.key, err)
	}
	return res, nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.cmd.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("del %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
