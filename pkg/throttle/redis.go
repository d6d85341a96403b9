package throttle

import (
	"context"
	_ "embed"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed throttle_window.lua
var throttleWindowScript string

var ErrInvalidReply = errors.New("invalid lua response format")

// RedisThrottler coordinates one throttle window per identity across
// replicas. The decision (leading edge, trailing slot, suppressed) is
// made atomically in Redis; running the callback and scheduling the
// trailing flush stay in the caller's process.
type RedisThrottler struct {
	client    *redis.Client
	scriptSHA string
	prefix    string
	timeout   time.Duration
	recorder  MetricsRecorder
}

// NewRedisThrottler pings the client and loads the window script.
// Recreating the throttler reloads the script, which recovers from a
// Redis restart clearing the script cache (NOSCRIPT).
func NewRedisThrottler(client *redis.Client, opts ...Option) (*RedisThrottler, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	sha, err := client.ScriptLoad(ctx, throttleWindowScript).Result()
	if err != nil {
		return nil, err
	}

	return &RedisThrottler{
		client:    client,
		scriptSHA: sha,
		prefix:    cfg.prefix,
		timeout:   cfg.timeout,
		recorder:  cfg.recorder,
	}, nil
}

// Allow decides what the caller should do with one call for the given
// identity and window. Decision.Leading means run now; Decision.Trailing
// means the caller claimed the single trailing slot and should invoke
// the callback after Decision.RetryAfter, then call Flush; neither set
// means the call is suppressed and should be dropped.
func (r *RedisThrottler) Allow(ctx context.Context, id Identity, wait time.Duration) (Decision, error) {
	if wait < 0 {
		wait = 0
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := float64(time.Now().UnixMicro()) / 1e6

	start := time.Now()
	cmd := r.client.EvalSha(ctx, r.scriptSHA, []string{r.key(id)},
		wait.Seconds(), // ARGV[1]
		now,            // ARGV[2]
	)

	result, err := cmd.Result()
	r.recorder.Add("throttle.call", 1, nil)
	r.recorder.Observe("throttle.redis_latency", time.Since(start).Seconds(), nil)
	if err != nil {
		return Decision{}, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 4 {
		return Decision{}, ErrInvalidReply
	}

	leadingVal, _ := values[0].(int64)
	trailingVal, _ := values[1].(int64)

	retryAfterFloat := convertToFloat(values[2])
	resetTimeFloat := convertToFloat(values[3])

	return Decision{
		Leading:    leadingVal == 1,
		Trailing:   trailingVal == 1,
		RetryAfter: time.Duration(retryAfterFloat * float64(time.Second)),
		ResetTime:  time.UnixMicro(int64(resetTimeFloat * 1e6)),
	}, nil
}

// Flush records the trailing invocation: it stamps the fire time and
// releases the trailing slot, opening the next window. Call it after
// running the callback for a Decision with Trailing set.
func (r *RedisThrottler) Flush(ctx context.Context, id Identity) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := float64(time.Now().UnixMicro()) / 1e6
	return r.client.HSet(ctx, r.key(id), "last_call", now, "pending", 0).Err()
}

// Reset is the distributed cancel: it deletes the stored state so the
// next Allow for the identity is a leading edge. Idempotent.
func (r *RedisThrottler) Reset(ctx context.Context, id Identity) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *RedisThrottler) key(id Identity) string {
	return r.prefix + string(id.Namespace) + ":" + id.Key
}

func convertToFloat(val interface{}) float64 {
	switch v := val.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
