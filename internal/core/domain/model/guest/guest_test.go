package guest_test

import (
	"testing"
	"time"

	"hotelpos/internal/core/domain/model/guest"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	checkIn := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	t.Run("should register a stay", func(t *testing.T) {
		g, err := guest.NewGuest(kernel.NewUUID(), "Amina Hassan", " 305 ", checkIn, checkOut)

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.Equal(t, "305", g.RoomNumber())
		assert.True(t, g.IsInHouse(checkIn.Add(36*time.Hour)))
		assert.False(t, g.IsInHouse(checkOut.Add(time.Hour)))
	})

	t.Run("should reject check out before check in", func(t *testing.T) {
		_, err := guest.NewGuest(kernel.NewUUID(), "Amina Hassan", "305", checkOut, checkIn)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "2026-08-01 is before check in 2026-08-04")
	})

	t.Run("should accept a day use", func(t *testing.T) {
		_, err := guest.NewGuest(kernel.NewUUID(), "Day Guest", "12", checkIn, checkIn)

		require.NoError(t, err)
	})

	t.Run("should require name, room and dates", func(t *testing.T) {
		_, err := guest.NewGuest(kernel.NewUUID(), "", "", time.Time{}, checkOut)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "check in")
	})
}

func TestGuest_SetContact(t *testing.T) {
	g, err := guest.NewGuest(kernel.NewUUID(), "Li Wei", "401", time.Now(), time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	g.SetContact(" li@guest.example ", "+254700000000")

	assert.Equal(t, "li@guest.example", g.Email())
	assert.Equal(t, "+254700000000", g.Phone())
}
