package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeCounters struct {
	values  map[string]int64
	expires map[string]time.Duration
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{values: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounters) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if v, ok := f.values[key]; ok {
		cmd.SetVal(strconv.FormatInt(v, 10))
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (f *fakeCounters) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.values[key]++
	cmd := redis.NewIntCmd(ctx, "incr", key)
	cmd.SetVal(f.values[key])
	return cmd
}

func (f *fakeCounters) Expire(ctx context.Context, key string, d time.Duration) *redis.BoolCmd {
	f.expires[key] = d
	cmd := redis.NewBoolCmd(ctx, "expire", key)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeCounters) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.values, k)
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func TestRedisThrottle(t *testing.T) {
	ctx := context.Background()
	counters := newFakeCounters()
	throttle := NewRedisThrottle(counters, 3, 15*time.Minute)
	key := ThrottleKey(" Ops@Example.com ", "10.0.0.1")

	if key != "ops@example.com|10.0.0.1" {
		t.Errorf("ThrottleKey() = %q", key)
	}

	for i := 0; i < 3; i++ {
		ok, err := throttle.Allow(ctx, key)
		if err != nil || !ok {
			t.Fatalf("attempt %d: Allow() = %v, %v; want true", i+1, ok, err)
		}
		if err := throttle.Fail(ctx, key); err != nil {
			t.Fatalf("Fail() error: %v", err)
		}
	}

	ok, err := throttle.Allow(ctx, key)
	if err != nil {
		t.Fatalf("Allow() error: %v", err)
	}
	if ok {
		t.Error("Allow() = true after max failures")
	}
	if got := counters.expires[throttlePrefix+key]; got != 15*time.Minute {
		t.Errorf("window = %v, want 15m", got)
	}

	if err := throttle.Reset(ctx, key); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if ok, _ := throttle.Allow(ctx, key); !ok {
		t.Error("Allow() = false after Reset")
	}
}

func TestNoopThrottle(t *testing.T) {
	throttle := NoopThrottle()
	for i := 0; i < 100; i++ {
		_ = throttle.Fail(context.Background(), "k")
	}
	if ok, err := throttle.Allow(context.Background(), "k"); !ok || err != nil {
		t.Errorf("Allow() = %v, %v; want true, nil", ok, err)
	}
}
