//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/pkg/clock"
	"luxstay-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(now time.Time) *reservation.Factory {
	return reservation.NewFactory(clock.NewMockClock(now), reservation.NewNightlyPriceCalculator())
}

func TestFactory_Book(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

	t.Run("success: prices nights times the nightly rate", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.PricePerNightCents = 10000
			b.CheckIn = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
		})

		res, err := newFactory(now).Book(b.RoomSpec(), b.BookingRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(30000), res.TotalPrice().Cents())
		assert.Equal(t, 300.0, res.TotalPrice().Decimal())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, b.UserID, res.UserID())
		assert.Equal(t, b.RoomID, res.RoomID())
	})

	t.Run("success: check-in today is not in the past", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)
		})

		_, err := newFactory(now).Book(b.RoomSpec(), b.BookingRequest())

		require.NoError(t, err)
	})

	t.Run("success: partial night is charged as a full night", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.PricePerNightCents = 12550
			b.CheckIn = time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)
		})

		res, err := newFactory(now).Book(b.RoomSpec(), b.BookingRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(2*12550), res.TotalPrice().Cents())
	})

	runCases(t, now, []bookCase{
		{
			name:   "error: room switched off",
			mutate: func(b *builder.ReservationBuilder) { b.RoomAvailable = false },
			errIs:  reservation.ErrRoomNotAvailable,
		},
		{
			name:   "error: more guests than capacity",
			mutate: func(b *builder.ReservationBuilder) { b.Capacity = 2; b.GuestCount = 3 },
			errIs:  reservation.ErrGuestCountExceedsCapacity,
			errMsg: "guest count exceeds room capacity of 2",
		},
		{
			name:   "error: zero guests",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 0 },
			errIs:  reservation.ErrInvalidGuestCount,
		},
		{
			name:   "error: check-out equals check-in",
			mutate: func(b *builder.ReservationBuilder) { b.CheckOut = b.CheckIn },
			errIs:  reservation.ErrCheckOutNotAfterCheckIn,
		},
		{
			name:   "error: check-out before check-in",
			mutate: func(b *builder.ReservationBuilder) { b.CheckIn, b.CheckOut = b.CheckOut, b.CheckIn },
			errIs:  reservation.ErrCheckOutNotAfterCheckIn,
		},
		{
			name: "error: check-in yesterday",
			mutate: func(b *builder.ReservationBuilder) {
				b.CheckIn = time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC)
				b.CheckOut = time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)
			},
			errIs: reservation.ErrCheckInInPast,
		},
		{
			name:   "error: unavailable room is reported before capacity",
			mutate: func(b *builder.ReservationBuilder) { b.RoomAvailable = false; b.GuestCount = 10 },
			errIs:  reservation.ErrRoomNotAvailable,
		},
		{
			name:   "error: capacity is reported before bad dates",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 10; b.CheckOut = b.CheckIn },
			errIs:  reservation.ErrGuestCountExceedsCapacity,
		},
	})
}

type bookCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
	errMsg string
}

func runCases(t *testing.T, now time.Time, cases []bookCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewReservationBuilder().With(c.mutate)

			res, err := newFactory(now).Book(b.RoomSpec(), b.BookingRequest())

			require.Nil(t, res)
			require.ErrorIs(t, err, c.errIs)
			if c.errMsg != "" {
				assert.EqualError(t, err, c.errMsg)
			}
		})
	}
}
