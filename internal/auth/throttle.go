package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed logins per key. It is consulted before the
// password check so a locked key never reaches bcrypt.
type LoginThrottle interface {
	Allow(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// ThrottleKey combines the normalized email and client address.
func ThrottleKey(email, ip string) string {
	return strings.ToLower(strings.TrimSpace(email)) + "|" + ip
}

type noopThrottle struct{}

// NoopThrottle never refuses an attempt.
func NoopThrottle() LoginThrottle { return noopThrottle{} }

func (noopThrottle) Allow(context.Context, string) (bool, error) { return true, nil }
func (noopThrottle) Fail(context.Context, string) error          { return nil }
func (noopThrottle) Reset(context.Context, string) error         { return nil }

// counterClient is the subset of *redis.Client the throttle uses.
type counterClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisThrottle locks a key for window after max failures inside it.
type RedisThrottle struct {
	client counterClient
	max    int
	window time.Duration
}

const throttlePrefix = "login_failures:"

func NewRedisThrottle(client counterClient, max int, window time.Duration) *RedisThrottle {
	return &RedisThrottle{client: client, max: max, window: window}
}

func (t *RedisThrottle) Allow(ctx context.Context, key string) (bool, error) {
	n, err := t.client.Get(ctx, throttlePrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n < t.max, nil
}

func (t *RedisThrottle) Fail(ctx context.Context, key string) error {
	n, err := t.client.Incr(ctx, throttlePrefix+key).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return t.client.Expire(ctx, throttlePrefix+key, t.window).Err()
	}
	return nil
}

func (t *RedisThrottle) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, throttlePrefix+key).Err()
}
