package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("C1", "P1", 3)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "C1", cmd.ClientID())
		assert.Equal(t, "P1", cmd.ProductID())
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("should reject missing client reference", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "P1", 3)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing product reference", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("C1", "", 3)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := commands.NewCreateOrderCommand("C1", "P1", quantity)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should collect all violations at once", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "", 0)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
