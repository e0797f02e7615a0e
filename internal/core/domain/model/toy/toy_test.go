package toy_test

import (
	"testing"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/toy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToy(t *testing.T, stock int) *toy.Toy {
	t.Helper()
	ty, err := toy.NewToy(kernel.NewUUID(), "Wooden Train Set", 10, 50, 150, stock, toy.ConditionGood)
	require.NoError(t, err)
	return ty
}

func TestNewToy(t *testing.T) {
	t.Run("starts available with full stock", func(t *testing.T) {
		ty := newTestToy(t, 3)

		assert.Equal(t, toy.Available, ty.Status())
		assert.Equal(t, 3, ty.StockQuantity())
		assert.Equal(t, 3, ty.AvailableQuantity())
		assert.Equal(t, 0, ty.TimesRented())
		assert.NoError(t, ty.Validate())
	})

	t.Run("rejects invalid arguments", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := toy.NewToy(kernel.UUID{}, "Train", 1, 1, 1, 1, toy.ConditionNew)
		require.Error(t, err)

		_, err = toy.NewToy(id, "", 1, 1, 1, 1, toy.ConditionNew)
		require.Error(t, err)

		_, err = toy.NewToy(id, "Train", -1, 1, 1, 1, toy.ConditionNew)
		require.Error(t, err)

		_, err = toy.NewToy(id, "Train", 1, 1, 1, -1, toy.ConditionNew)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var ty toy.Toy
		require.ErrorIs(t, ty.Validate(), toy.ErrToyIsNotConstructed)
	})
}

func TestRestoreToy(t *testing.T) {
	t.Run("rejects available above stock", func(t *testing.T) {
		_, err := toy.RestoreToy(kernel.NewUUID(), "Train", 1, 1, 1, 2, 3, 0, toy.Available, toy.ConditionGood)
		require.Error(t, err)
	})

	t.Run("rejects negative available", func(t *testing.T) {
		_, err := toy.RestoreToy(kernel.NewUUID(), "Train", 1, 1, 1, 2, -1, 0, toy.Available, toy.ConditionGood)
		require.Error(t, err)
	})

	t.Run("restores counters as stored", func(t *testing.T) {
		ty, err := toy.RestoreToy(kernel.NewUUID(), "Train", 1, 1, 1, 5, 2, 7, toy.Reserved, toy.ConditionAcceptable)
		require.NoError(t, err)
		assert.Equal(t, 5, ty.StockQuantity())
		assert.Equal(t, 2, ty.AvailableQuantity())
		assert.Equal(t, 7, ty.TimesRented())
		assert.Equal(t, toy.Reserved, ty.Status())
	})
}

func TestToy_Reserve(t *testing.T) {
	t.Run("decrements available and counts the rental", func(t *testing.T) {
		ty := newTestToy(t, 3)

		require.NoError(t, ty.Reserve(2))
		assert.Equal(t, 1, ty.AvailableQuantity())
		assert.Equal(t, 2, ty.TimesRented())
	})

	t.Run("fails without mutation when stock is short", func(t *testing.T) {
		ty := newTestToy(t, 3)
		require.NoError(t, ty.Reserve(2))

		err := ty.Reserve(2)
		require.ErrorIs(t, err, toy.ErrInsufficientStock)
		assert.Equal(t, 1, ty.AvailableQuantity())
		assert.Equal(t, 2, ty.TimesRented())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		ty := newTestToy(t, 3)
		require.Error(t, ty.Reserve(0))
		require.Error(t, ty.Reserve(-1))
	})
}

func TestToy_Release(t *testing.T) {
	t.Run("returns units to availability", func(t *testing.T) {
		ty := newTestToy(t, 3)
		require.NoError(t, ty.Reserve(2))

		require.NoError(t, ty.Release(2))
		assert.Equal(t, 3, ty.AvailableQuantity())
		assert.Equal(t, 2, ty.TimesRented())
	})

	t.Run("never exceeds stock", func(t *testing.T) {
		ty := newTestToy(t, 3)

		require.NoError(t, ty.Release(5))
		assert.Equal(t, 3, ty.AvailableQuantity())
	})
}

func TestToy_Unreserve(t *testing.T) {
	t.Run("round trip restores pre-order counters exactly", func(t *testing.T) {
		ty := newTestToy(t, 3)
		require.NoError(t, ty.Reserve(2))

		require.NoError(t, ty.Unreserve(2))
		assert.Equal(t, 3, ty.AvailableQuantity())
		assert.Equal(t, 0, ty.TimesRented())
	})

	t.Run("times rented never goes negative", func(t *testing.T) {
		ty := newTestToy(t, 3)

		require.NoError(t, ty.Unreserve(1))
		assert.Equal(t, 0, ty.TimesRented())
	})
}

func TestToy_ChangeStatus(t *testing.T) {
	ty := newTestToy(t, 1)

	require.NoError(t, ty.ChangeStatus(toy.Reserved))
	assert.Equal(t, toy.Reserved, ty.Status())

	require.Error(t, ty.ChangeStatus(toy.Unknown))
	assert.Equal(t, toy.Reserved, ty.Status())
}

func TestToy_SetRates(t *testing.T) {
	ty := newTestToy(t, 1)

	require.NoError(t, ty.SetDailyRate(12.5))
	require.NoError(t, ty.SetWeeklyRate(60))
	require.NoError(t, ty.SetMonthlyRate(200))
	assert.Equal(t, 12.5, ty.RentalPriceDaily())
	assert.Equal(t, 60.0, ty.RentalPriceWeekly())
	assert.Equal(t, 200.0, ty.RentalPriceMonthly())

	require.Error(t, ty.SetDailyRate(-1))
	require.Error(t, ty.SetWeeklyRate(-1))
	require.Error(t, ty.SetMonthlyRate(-1))
}

func TestStatus(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []toy.Status{toy.Available, toy.Reserved, toy.Rented, toy.Cleaning, toy.Maintenance, toy.Retired} {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("unknown fails validation", func(t *testing.T) {
		assert.Error(t, toy.Unknown.Validate())
		assert.Error(t, toy.Status(42).Validate())
	})

	t.Run("string representation", func(t *testing.T) {
		assert.Equal(t, "Available", toy.Available.String())
		assert.Equal(t, "Cleaning", toy.Cleaning.String())
		assert.Equal(t, "Unknown", toy.Status(42).String())
	})
}
