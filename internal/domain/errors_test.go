package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsVersionConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "version conflict error",
			err:  ErrOrderVersionConflict,
			want: true,
		},
		{
			name: "wrapped version conflict error",
			err:  errors.Join(ErrOrderVersionConflict, errors.New("additional context")),
			want: true,
		},
		{
			name: "other error",
			err:  NewNotFound(EntityOrder, 1),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsVersionConflict(tt.err)
			if got != tt.want {
				t.Errorf("IsVersionConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      NewNotFound(EntityCustomer, 7),
			sentinel: ErrNotFound,
			message:  "customer not found with id: 7",
		},
		{
			name:     "invalid state",
			err:      &InvalidStateError{OrderID: 5, Status: OrderStatusFulfilled, Reason: "finalized orders are immutable"},
			sentinel: ErrInvalidState,
			message:  "order 5 (FULFILLED): finalized orders are immutable",
		},
		{
			name:     "invalid quantity",
			err:      &InvalidQuantityError{Quantity: 0},
			sentinel: ErrInvalidQuantity,
			message:  "quantity must be greater than zero, got 0",
		},
		{
			name:     "empty order",
			err:      &EmptyOrderError{OrderID: 3},
			sentinel: ErrEmptyOrder,
			message:  "order 3: cannot fulfill an order without items",
		},
		{
			name:     "validation",
			err:      &ValidationError{Field: "description", Reason: "too long"},
			sentinel: ErrValidation,
			message:  "description: too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("close order: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Fatalf("expected %v to match sentinel %v", wrapped, tt.sentinel)
			}
			if tt.err.Error() != tt.message {
				t.Fatalf("unexpected message %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestNotFoundErrorAs(t *testing.T) {
	err := fmt.Errorf("add item: %w", NewNotFound(EntityProduct, 9))

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("expected NotFoundError")
	}
	if nf.Entity != EntityProduct || nf.ID != 9 {
		t.Fatalf("unexpected payload: %+v", nf)
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound must be true")
	}
	if errors.Is(err, ErrInvalidState) {
		t.Fatal("not found must not match invalid state")
	}
}
