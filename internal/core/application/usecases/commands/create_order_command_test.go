package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		actor := shipperActor()

		cmd, err := commands.NewCreateOrderCommand(actor, "books", 50, 40, 30, 12.5, 12.97, 77.59)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, actor, cmd.Actor())
		assert.Equal(t, "books", cmd.ItemName())
		assert.InDelta(t, 0.06, cmd.Dimensions().VolumeM3(), 1e-9)
		assert.InDelta(t, 12.5, cmd.WeightKg(), 1e-9)
		assert.InDelta(t, 12.97, cmd.Pickup().Latitude(), 1e-9)
		assert.InDelta(t, 77.59, cmd.Pickup().Longitude(), 1e-9)
	})

	t.Run("non_positive_dimension", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(shipperActor(), "books", 0, 40, 30, 1, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("pickup_out_of_range", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(shipperActor(), "books", 1, 1, 1, 1, 91, 0)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
	})

	t.Run("missing_actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(user.Actor{}, "books", 1, 1, 1, 1, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
