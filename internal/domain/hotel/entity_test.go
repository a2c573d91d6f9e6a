//go:build unit

package hotel_test

import (
	"strings"
	"testing"

	"luxstay-api/internal/domain/hotel"
	"luxstay-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.HotelBuilder)
		errIs  error
	}{
		{name: "success: defaults", mutate: func(*builder.HotelBuilder) {}},
		{name: "success: zero rating", mutate: func(h *builder.HotelBuilder) { h.Rating = 0 }},
		{name: "success: top rating", mutate: func(h *builder.HotelBuilder) { h.Rating = 5 }},
		{name: "error: blank name", mutate: func(h *builder.HotelBuilder) { h.Name = "  " }, errIs: hotel.ErrNameRequired},
		{name: "error: description under ten characters", mutate: func(h *builder.HotelBuilder) { h.Description = "too short" }, errIs: hotel.ErrDescriptionTooShort},
		{name: "error: missing city", mutate: func(h *builder.HotelBuilder) { h.City = "" }, errIs: hotel.ErrAddressRequired},
		{name: "error: negative rating", mutate: func(h *builder.HotelBuilder) { h.Rating = -0.5 }, errIs: hotel.ErrInvalidRating},
		{name: "error: rating above five", mutate: func(h *builder.HotelBuilder) { h.Rating = 5.1 }, errIs: hotel.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := builder.NewHotelBuilder().With(tt.mutate).BuildDomain()

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, h.ID())
		})
	}
}

func TestNewHotel_Slug(t *testing.T) {
	h, err := builder.NewHotelBuilder().WithName("Grand Plaza & Spa").BuildDomain()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h.Slug(), "grand-plaza-and-spa-"), h.Slug())
	assert.Equal(t, hotel.MakeSlug("Grand Plaza & Spa", h.ID()), h.Slug())
}

func TestNewHotel_Normalizes(t *testing.T) {
	h, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
		b.Name = "  Grand Plaza  "
		b.Images = nil
		b.Amenities = nil
	}).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, "Grand Plaza", h.Details().Name)
	assert.NotNil(t, h.Details().Images)
	assert.NotNil(t, h.Details().Amenities)
}

func TestHotel_Revise(t *testing.T) {
	t.Run("success: renaming regenerates the slug", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		before := h.Slug()

		details := h.Details()
		details.Name = "Harbour View"
		require.NoError(t, h.Revise(details))

		assert.NotEqual(t, before, h.Slug())
		assert.Equal(t, hotel.MakeSlug("Harbour View", h.ID()), h.Slug())
	})

	t.Run("success: slug is stable when the name is unchanged", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		before := h.Slug()

		details := h.Details()
		details.Rating = 3
		require.NoError(t, h.Revise(details))

		assert.Equal(t, before, h.Slug())
		assert.Equal(t, 3.0, h.Details().Rating)
	})

	t.Run("error: invalid details leave the hotel untouched", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		before := h.Details()

		details := h.Details()
		details.Description = "short"
		require.ErrorIs(t, h.Revise(details), hotel.ErrDescriptionTooShort)

		assert.Equal(t, before, h.Details())
	})
}
