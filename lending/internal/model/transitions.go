package model

import (
	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/pkg/errors"
)

// Terminal reports whether no further transition is defined for the status.
func (s Status) Terminal() bool {
	switch s {
	case StatusDenied, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// CanTransition reports the legal edges of the request lifecycle:
// PENDING -> APPROVED | DENIED | CANCELLED, APPROVED -> RETURNED.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusApproved || to == StatusDenied || to == StatusCancelled
	case StatusApproved:
		return to == StatusReturned
	}
	return false
}

// Transition validates the edge and returns ErrInvalidTransition naming the
// current status otherwise. Callers persist the new status themselves, under
// the same row lock that loaded the request.
func (r *EquipmentRequest) Transition(to Status) error {
	if !r.Status.CanTransition(to) {
		return errors.Wrapf(errs.ErrInvalidTransition, "request is already %s", r.Status)
	}
	r.Status = to
	return nil
}

// Reserve commits qty units of stock to an approved request. It is the only
// decrement path of AvailableQuantity and keeps 0 <= available <= quantity.
func (e *Equipment) Reserve(qty int) error {
	if qty <= 0 {
		return errors.Wrap(errs.ErrValidation, "quantity must be greater than 0")
	}
	if e.AvailableQuantity < qty {
		return errors.Wrapf(errs.ErrInsufficientStock, "only %d of %d available", e.AvailableQuantity, e.Quantity)
	}
	e.AvailableQuantity -= qty
	return nil
}

// Release returns qty units to stock, clamped so available never exceeds
// the total owned quantity (the total may have been lowered by an admin
// edit while units were on loan).
func (e *Equipment) Release(qty int) {
	if qty <= 0 {
		return
	}
	e.AvailableQuantity += qty
	if e.AvailableQuantity > e.Quantity {
		e.AvailableQuantity = e.Quantity
	}
}

// ValidateCapacity checks an administrative quantity edit.
func ValidateCapacity(quantity, available int) error {
	if quantity < 0 || available < 0 {
		return errors.Wrap(errs.ErrInvalidRange, "quantities must be non-negative")
	}
	if available > quantity {
		return errors.Wrapf(errs.ErrInvalidRange, "available %d exceeds total %d", available, quantity)
	}
	return nil
}
