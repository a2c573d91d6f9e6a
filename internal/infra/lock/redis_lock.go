package lock

import (
	"context"
	"log/slog"
	"time"

	"luxstay-api/internal/pkg/config"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrRoomBusy = errs.Invalid("room is being booked by another request, please retry")

const (
	keyPrefix      = "lock:room:"
	retryInterval  = 50 * time.Millisecond
	releaseTimeout = time.Second
)

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

type RedisRoomLocker struct {
	client   redis.Cmdable
	ttl      time.Duration
	wait     time.Duration
	newToken func() string
}

func NewRedisRoomLocker(client redis.Cmdable, cfg config.RedisConfig) *RedisRoomLocker {
	return &RedisRoomLocker{
		client:   client,
		ttl:      cfg.LockTTL,
		wait:     cfg.LockWait,
		newToken: func() string { return uuid.NewString() },
	}
}

// Lock polls SET NX until it wins or the wait budget runs out. The key expires
// after ttl so a crashed holder cannot block the room forever.
func (l *RedisRoomLocker) Lock(ctx context.Context, roomID uuid.UUID) (func(), error) {
	key := keyPrefix + roomID.String()
	token := l.newToken()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "failed to acquire room lock")
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}
		if !time.Now().Before(deadline) {
			return nil, ErrRoomBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func (l *RedisRoomLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
		slog.Warn("failed to release room lock", "key", key, "error", err.Error())
	}
}

// NoopLocker is used when Redis is not configured.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, uuid.UUID) (func(), error) {
	return func() {}, nil
}

var (
	_ shared.RoomLocker = (*RedisRoomLocker)(nil)
	_ shared.RoomLocker = NoopLocker{}
)
