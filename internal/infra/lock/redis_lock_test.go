//go:build unit

package lock

import (
	"context"
	"testing"
	"time"

	"luxstay-api/internal/pkg/errs"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T, wait time.Duration) (*RedisRoomLocker, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	l := &RedisRoomLocker{
		client:   client,
		ttl:      10 * time.Second,
		wait:     wait,
		newToken: func() string { return "tok" },
	}
	return l, mock
}

func TestRedisRoomLocker_Lock(t *testing.T) {
	roomID := uuid.New()
	key := keyPrefix + roomID.String()

	t.Run("success: acquires and releases with the same token", func(t *testing.T) {
		l, mock := newTestLocker(t, 0)
		mock.ExpectSetNX(key, "tok", 10*time.Second).SetVal(true)
		mock.ExpectEval(releaseScript, []string{key}, "tok").SetVal(int64(1))

		release, err := l.Lock(context.Background(), roomID)
		require.NoError(t, err)
		release()

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: retries until the holder lets go", func(t *testing.T) {
		l, mock := newTestLocker(t, time.Second)
		mock.ExpectSetNX(key, "tok", 10*time.Second).SetVal(false)
		mock.ExpectSetNX(key, "tok", 10*time.Second).SetVal(true)

		release, err := l.Lock(context.Background(), roomID)
		require.NoError(t, err)
		require.NotNil(t, release)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: busy room after the wait budget", func(t *testing.T) {
		l, mock := newTestLocker(t, 0)
		mock.ExpectSetNX(key, "tok", 10*time.Second).SetVal(false)

		release, err := l.Lock(context.Background(), roomID)
		assert.Nil(t, release)
		assert.ErrorIs(t, err, ErrRoomBusy)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("error: redis failure is not a busy room", func(t *testing.T) {
		l, mock := newTestLocker(t, 0)
		mock.ExpectSetNX(key, "tok", 10*time.Second).SetErr(assert.AnError)

		_, err := l.Lock(context.Background(), roomID)
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("error: context cancelled while waiting", func(t *testing.T) {
		l, mock := newTestLocker(t, time.Minute)
		mock.ExpectSetNX(key, "tok", 10*time.Second).SetVal(false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := l.Lock(ctx, roomID)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNoopLocker(t *testing.T) {
	release, err := NoopLocker{}.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotPanics(t, release)
}
