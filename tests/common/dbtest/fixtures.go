//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"luxstay-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

// hashes TestPassword once per process
func testPasswordHash(t *testing.T) string {
	t.Helper()
	passwordHashOnce.Do(func() {
		h, err := password.Hash(TestPassword)
		require.NoError(t, err)
		passwordHash = h
	})
	require.NotEmpty(t, passwordHash)
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, 'Test', 'User', $4) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO hotels (id, owner_id, name, slug, description, address, city, country, rating)
		VALUES ($1, $2, $3, $4, 'A comfortable test hotel', '1 Main Street', 'Lisbon', 'Portugal', 4)`,
		hotelID, ownerID, name, hotelID.String())
	require.NoError(t, err)

	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, pricePerNightCents int64, capacity int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO rooms (id, hotel_id, name, description, room_type, price_per_night_cents, capacity)
		VALUES ($1, $2, 'Room '||left($1::text, 4), 'A spacious test room', 'DOUBLE', $3, $4)`,
		roomID, hotelID, pricePerNightCents, capacity)
	require.NoError(t, err)

	return roomID
}

func CreateTestReservation(t *testing.T, db DBLike, roomID, userID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations (id, room_id, user_id, check_in_date, check_out_date, guest_count, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, 1, 10000, $6)`,
		reservationID, roomID, userID, checkIn, checkOut, status)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
