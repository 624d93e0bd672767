package model_test

import (
	"testing"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to approved", from: model.StatusPending, to: model.StatusApproved, want: true},
		{name: "pending to denied", from: model.StatusPending, to: model.StatusDenied, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to returned", from: model.StatusPending, to: model.StatusReturned, want: false},
		{name: "approved to returned", from: model.StatusApproved, to: model.StatusReturned, want: true},
		{name: "approved to denied", from: model.StatusApproved, to: model.StatusDenied, want: false},
		{name: "approved to cancelled", from: model.StatusApproved, to: model.StatusCancelled, want: false},
		{name: "denied is terminal", from: model.StatusDenied, to: model.StatusApproved, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusApproved, want: false},
		{name: "returned is terminal", from: model.StatusReturned, to: model.StatusApproved, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.from.CanTransition(tt.to))
			if tt.from.Terminal() {
				require.False(t, tt.from.CanTransition(tt.to))
			}
		})
	}
}

func TestEquipmentRequest_Transition(t *testing.T) {
	t.Parallel()

	t.Run("approve pending", func(t *testing.T) {
		t.Parallel()
		req := &model.EquipmentRequest{Status: model.StatusPending}
		require.NoError(t, req.Transition(model.StatusApproved))
		require.Equal(t, model.StatusApproved, req.Status)
	})

	t.Run("deny already denied keeps state", func(t *testing.T) {
		t.Parallel()
		req := &model.EquipmentRequest{Status: model.StatusDenied, DenialReason: "broken"}
		err := req.Transition(model.StatusDenied)
		require.True(t, errors.Is(err, errs.ErrInvalidTransition))
		require.Contains(t, err.Error(), "DENIED")
		require.Equal(t, model.StatusDenied, req.Status)
		require.Equal(t, "broken", req.DenialReason)
	})

	t.Run("deny approved reports current status", func(t *testing.T) {
		t.Parallel()
		req := &model.EquipmentRequest{Status: model.StatusApproved}
		err := req.Transition(model.StatusDenied)
		require.True(t, errors.Is(err, errs.ErrInvalidTransition))
		require.Contains(t, err.Error(), "APPROVED")
	})
}

func TestEquipment_Reserve(t *testing.T) {
	t.Parallel()

	t.Run("scenario A: approve decrements", func(t *testing.T) {
		t.Parallel()
		eq := &model.Equipment{Quantity: 10, AvailableQuantity: 10}
		require.NoError(t, eq.Reserve(3))
		require.Equal(t, 7, eq.AvailableQuantity)
		require.Equal(t, 10, eq.Quantity)
	})

	t.Run("scenario B: insufficient stock leaves state unchanged", func(t *testing.T) {
		t.Parallel()
		eq := &model.Equipment{Quantity: 5, AvailableQuantity: 2}
		err := eq.Reserve(5)
		require.True(t, errors.Is(err, errs.ErrInsufficientStock))
		require.Equal(t, 2, eq.AvailableQuantity)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		t.Parallel()
		eq := &model.Equipment{Quantity: 5, AvailableQuantity: 5}
		require.True(t, errors.Is(eq.Reserve(0), errs.ErrValidation))
		require.True(t, errors.Is(eq.Reserve(-1), errs.ErrValidation))
		require.Equal(t, 5, eq.AvailableQuantity)
	})

	t.Run("conservation: reservations account for the gap", func(t *testing.T) {
		t.Parallel()
		eq := &model.Equipment{Quantity: 10, AvailableQuantity: 10}
		reserved := 0
		for _, qty := range []int{3, 2, 4} {
			require.NoError(t, eq.Reserve(qty))
			reserved += qty
		}
		require.Equal(t, eq.Quantity, eq.AvailableQuantity+reserved)
		require.True(t, errors.Is(eq.Reserve(2), errs.ErrInsufficientStock))
		require.Equal(t, eq.Quantity, eq.AvailableQuantity+reserved)
	})
}

func TestEquipment_Release(t *testing.T) {
	t.Parallel()

	t.Run("release restores stock", func(t *testing.T) {
		t.Parallel()
		eq := &model.Equipment{Quantity: 10, AvailableQuantity: 7}
		eq.Release(3)
		require.Equal(t, 10, eq.AvailableQuantity)
	})

	t.Run("release clamps at total quantity", func(t *testing.T) {
		t.Parallel()
		// total was lowered by an admin edit while units were out
		eq := &model.Equipment{Quantity: 4, AvailableQuantity: 3}
		eq.Release(5)
		require.Equal(t, 4, eq.AvailableQuantity)
	})

	t.Run("non-positive release is a no-op", func(t *testing.T) {
		t.Parallel()
		eq := &model.Equipment{Quantity: 4, AvailableQuantity: 2}
		eq.Release(0)
		eq.Release(-3)
		require.Equal(t, 2, eq.AvailableQuantity)
	})
}

func TestValidateCapacity(t *testing.T) {
	t.Parallel()
	require.NoError(t, model.ValidateCapacity(10, 10))
	require.NoError(t, model.ValidateCapacity(10, 0))
	require.True(t, errors.Is(model.ValidateCapacity(5, 6), errs.ErrInvalidRange))
	require.True(t, errors.Is(model.ValidateCapacity(-1, 0), errs.ErrInvalidRange))
	require.True(t, errors.Is(model.ValidateCapacity(5, -2), errs.ErrInvalidRange))
}
