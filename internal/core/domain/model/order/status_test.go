package order_test

import (
	"errors"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	t.Run("should accept any non empty label", func(t *testing.T) {
		for _, label := range []string{"shipped", "delivered", "order placed", "  "} {
			s, err := order.NewStatus(label)

			require.NoError(t, err)
			assert.Equal(t, label, s.String())
		}
	})

	t.Run("should reject the empty label", func(t *testing.T) {
		_, err := order.NewStatus("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPermissiveTransitions(t *testing.T) {
	policy := order.PermissiveTransitions{}

	require.NoError(t, policy.Allow(order.Placed, "shipped"))
	require.NoError(t, policy.Allow("delivered", order.Placed))
	require.NoError(t, policy.Allow("shipped", "shipped"))
}

func TestTransitionPolicyFunc(t *testing.T) {
	errBackwards := errors.New("cannot go back to placed")
	policy := order.TransitionPolicyFunc(func(_, to order.Status) error {
		if to == order.Placed {
			return errBackwards
		}
		return nil
	})

	require.NoError(t, policy.Allow(order.Placed, "shipped"))
	require.ErrorIs(t, policy.Allow("delivered", order.Placed), errBackwards)
}
