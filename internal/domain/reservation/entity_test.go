//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/domain/user"
	"luxstay-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actor int

const (
	actorGuest actor = iota
	actorHotelOwner
	actorAdmin
	actorStranger
)

func accessAs(b *builder.ReservationBuilder, a actor) reservation.Access {
	var p auth.Principal
	switch a {
	case actorGuest:
		p = auth.NewPrincipal(b.UserID, "guest@example.com", user.RoleClient)
	case actorHotelOwner:
		p = auth.NewPrincipal(b.HotelOwnerID, "owner@example.com", user.RoleHotelOwner)
	case actorAdmin:
		p = auth.NewPrincipal(uuid.New(), "admin@example.com", user.RoleAdmin)
	default:
		p = auth.NewPrincipal(uuid.New(), "someone@example.com", user.RoleClient)
	}
	return reservation.AccessFor(p, b.UserID, b.HotelOwnerID)
}

func statusPtr(s reservation.Status) *reservation.Status { return &s }

func TestReservation_Apply(t *testing.T) {
	calc := reservation.NewNightlyPriceCalculator()

	tests := []struct {
		name       string
		current    reservation.Status
		actor      actor
		patch      reservation.Patch
		errIs      error
		wantStatus reservation.Status
	}{
		{name: "success: hotel owner confirms", current: reservation.StatusPending, actor: actorHotelOwner, patch: reservation.Patch{Status: statusPtr(reservation.StatusConfirmed)}, wantStatus: reservation.StatusConfirmed},
		{name: "success: admin completes", current: reservation.StatusConfirmed, actor: actorAdmin, patch: reservation.Patch{Status: statusPtr(reservation.StatusCompleted)}, wantStatus: reservation.StatusCompleted},
		{name: "success: guest cancels pending", current: reservation.StatusPending, actor: actorGuest, patch: reservation.Patch{Status: statusPtr(reservation.StatusCancelled)}, wantStatus: reservation.StatusCancelled},
		{name: "success: guest cancels confirmed", current: reservation.StatusConfirmed, actor: actorGuest, patch: reservation.Patch{Status: statusPtr(reservation.StatusCancelled)}, wantStatus: reservation.StatusCancelled},
		{name: "success: same status is a no-op", current: reservation.StatusPending, actor: actorGuest, patch: reservation.Patch{Status: statusPtr(reservation.StatusPending)}, wantStatus: reservation.StatusPending},
		{name: "error: guest confirms own reservation", current: reservation.StatusPending, actor: actorGuest, patch: reservation.Patch{Status: statusPtr(reservation.StatusConfirmed)}, errIs: reservation.ErrHotelAuthorityRequired},
		{name: "error: guest completes own reservation", current: reservation.StatusConfirmed, actor: actorGuest, patch: reservation.Patch{Status: statusPtr(reservation.StatusCompleted)}, errIs: reservation.ErrHotelAuthorityRequired},
		{name: "error: stranger", current: reservation.StatusPending, actor: actorStranger, patch: reservation.Patch{}, errIs: reservation.ErrNotReservationParty},
		{name: "error: pending straight to completed", current: reservation.StatusPending, actor: actorHotelOwner, patch: reservation.Patch{Status: statusPtr(reservation.StatusCompleted)}, errIs: reservation.ErrInvalidStatusTransition},
		{name: "error: cancelled back to pending", current: reservation.StatusCancelled, actor: actorAdmin, patch: reservation.Patch{Status: statusPtr(reservation.StatusPending)}, errIs: reservation.ErrInvalidStatusTransition},
		{name: "error: completed reopened", current: reservation.StatusCompleted, actor: actorHotelOwner, patch: reservation.Patch{Status: statusPtr(reservation.StatusConfirmed)}, errIs: reservation.ErrInvalidStatusTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = tt.current })
			res := b.BuildDomain()

			err := res.Apply(accessAs(b, tt.actor), tt.patch, b.PricePerNight(), calc)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.current, res.Status(), "status must not change on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status())
		})
	}
}

func TestReservation_ApplyDates(t *testing.T) {
	calc := reservation.NewNightlyPriceCalculator()

	t.Run("success: new check-out reprices with the current room rate", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()
		newOut := b.CheckIn.AddDate(0, 0, 7)
		rate, err := money.FromCents(20000)
		require.NoError(t, err)

		err = res.Apply(accessAs(b, actorGuest), reservation.Patch{CheckOut: &newOut}, rate, calc)

		require.NoError(t, err)
		assert.Equal(t, b.CheckIn, res.Period().CheckIn())
		assert.Equal(t, newOut, res.Period().CheckOut())
		assert.Equal(t, int64(7*20000), res.TotalPrice().Cents())
	})

	t.Run("success: no date change keeps the stored price", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()
		before := res.TotalPrice()
		notes := "late arrival"

		err := res.Apply(accessAs(b, actorGuest), reservation.Patch{SpecialRequests: &notes}, money.Money{}, calc)

		require.NoError(t, err)
		assert.Equal(t, before, res.TotalPrice())
		assert.Equal(t, "late arrival", res.SpecialRequests().String())
	})

	t.Run("success: guest count above capacity is accepted on update", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Capacity = 2 })
		res := b.BuildDomain()
		guests := 9

		err := res.Apply(accessAs(b, actorGuest), reservation.Patch{GuestCount: &guests}, b.PricePerNight(), calc)

		require.NoError(t, err)
		assert.Equal(t, 9, res.GuestCount())
	})

	t.Run("error: new check-in after stored check-out leaves reservation untouched", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()
		newIn := b.CheckOut.Add(24 * time.Hour)
		confirmed := reservation.StatusConfirmed

		err := res.Apply(accessAs(b, actorHotelOwner), reservation.Patch{Status: &confirmed, CheckIn: &newIn}, b.PricePerNight(), calc)

		require.ErrorIs(t, err, reservation.ErrCheckOutNotAfterCheckIn)
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, b.CheckIn, res.Period().CheckIn())
	})
}

func TestReservation_Cancel(t *testing.T) {
	for _, current := range []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusCancelled,
		reservation.StatusCompleted,
	} {
		t.Run("success: from "+current.String(), func(t *testing.T) {
			b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = current })
			res := b.BuildDomain()

			require.NoError(t, res.Cancel(accessAs(b, actorGuest)))
			require.NoError(t, res.Cancel(accessAs(b, actorGuest)))
			assert.Equal(t, reservation.StatusCancelled, res.Status())
		})
	}

	t.Run("error: stranger", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()

		err := res.Cancel(accessAs(b, actorStranger))

		require.ErrorIs(t, err, reservation.ErrNotReservationParty)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})
}
