package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewAddCartItemCommand(
		userID, restaurantID, "Luigi's",
		itemID, "Margherita Pizza", decimal.NewFromFloat(10.00), "https://img.example/pizza.png", 2, "no basil",
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, "Luigi's", cmd.RestaurantName())

	item, err := cmd.Item()
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza", item.Name())
	assert.Equal(t, 2, item.Quantity())
}

func TestNewAddCartItemCommand_InvalidInput(t *testing.T) {
	userID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	t.Run("missing restaurant name", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			userID, restaurantID, "", itemID, "Pizza", decimal.NewFromFloat(10.00), "", 1, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing item name", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			userID, restaurantID, "Luigi's", itemID, "", decimal.NewFromFloat(10.00), "", 1, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			userID, restaurantID, "Luigi's", itemID, "Pizza", decimal.NewFromFloat(-1), "", 1, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			userID, restaurantID, "Luigi's", itemID, "Pizza", decimal.NewFromFloat(10.00), "", 0, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed ids", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			kernel.UUID{}, restaurantID, "Luigi's", itemID, "Pizza", decimal.NewFromFloat(10.00), "", 1, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddCartItemCommand_NotConstructed(t *testing.T) {
	cmd := commands.AddCartItemCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
}
