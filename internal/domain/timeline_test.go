package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

func TestTimelineEventValidate(t *testing.T) {
	tests := []struct {
		name  string
		event domain.TimelineEvent
		field string
	}{
		{name: "known type", event: domain.TimelineEvent{OrderID: 1, Type: domain.TimelineItemRemoved}},
		{name: "missing order", event: domain.TimelineEvent{Type: domain.TimelineOrderCreated}, field: "orderId"},
		{name: "unknown type", event: domain.TimelineEvent{OrderID: 1, Type: "OrderShipped"}, field: "type"},
		{name: "empty type", event: domain.TimelineEvent{OrderID: 1}, field: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
