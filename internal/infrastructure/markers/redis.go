package markers

import (
	"context"
	"fmt"
	"time"

	"nest_configurator/internal/usecase/interfaces"

	"github.com/gomodule/redigo/redis"
)

const keyPrefix = "configurator:marker:"

// Redis keeps markers in Redis with SETEX so they expire server side and are
// shared by every instance.
type Redis struct {
	pool *redis.Pool
	ttl  time.Duration
}

var _ interfaces.ISessionMarkerStore = (*Redis)(nil)

// NewRedisPool dials addr lazily.
func NewRedisPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     4,
		IdleTimeout: 5 * time.Minute,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", addr,
				redis.DialConnectTimeout(2*time.Second),
				redis.DialReadTimeout(2*time.Second),
				redis.DialWriteTimeout(2*time.Second))
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func NewRedis(pool *redis.Pool, ttl time.Duration) *Redis {
	return &Redis{pool: pool, ttl: ttl}
}

func (r *Redis) Set(ctx context.Context, sessionID string) error {
	seconds := int64(r.ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	_, err := r.do(ctx, "SETEX", keyPrefix+sessionID, seconds, "1")
	return err
}

func (r *Redis) Exists(ctx context.Context, sessionID string) (bool, error) {
	return redis.Bool(r.do(ctx, "EXISTS", keyPrefix+sessionID))
}

func (r *Redis) Clear(ctx context.Context, sessionID string) error {
	_, err := r.do(ctx, "DEL", keyPrefix+sessionID)
	return err
}

func (r *Redis) do(ctx context.Context, cmd string, args ...interface{}) (interface{}, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis %s: %w", cmd, err)
	}
	defer conn.Close()

	reply, err := redis.DoContext(conn, ctx, cmd, args...)
	if err != nil {
		return nil, fmt.Errorf("redis %s: %w", cmd, err)
	}
	return reply, nil
}
