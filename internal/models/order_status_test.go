package models

import (
	"reflect"
	"testing"
)

var allOrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
	OrderOutForDelivery, OrderDelivered, OrderCancelled, OrderRefunded,
}

func TestOrderStatusTransitionTable(t *testing.T) {
	legal := map[OrderStatus][]OrderStatus{
		OrderPending:        {OrderConfirmed, OrderCancelled},
		OrderConfirmed:      {OrderPreparing, OrderCancelled},
		OrderPreparing:      {OrderReady, OrderCancelled},
		OrderReady:          {OrderOutForDelivery, OrderCancelled},
		OrderOutForDelivery: {OrderDelivered, OrderCancelled},
		OrderDelivered:      {OrderRefunded},
		OrderCancelled:      {},
		OrderRefunded:       {},
	}

	for _, from := range allOrderStatuses {
		for _, to := range allOrderStatuses {
			want := false
			for _, next := range legal[from] {
				if next == to {
					want = true
				}
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderStatusNextPossible(t *testing.T) {
	t.Run("active status", func(t *testing.T) {
		got := OrderConfirmed.NextPossible()
		want := []OrderStatus{OrderPreparing, OrderCancelled}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NextPossible(confirmed) = %v, want %v", got, want)
		}
	})

	t.Run("delivered can only be refunded", func(t *testing.T) {
		got := OrderDelivered.NextPossible()
		want := []OrderStatus{OrderRefunded}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NextPossible(delivered) = %v, want %v", got, want)
		}
	})

	t.Run("terminal statuses", func(t *testing.T) {
		for _, status := range []OrderStatus{OrderCancelled, OrderRefunded} {
			if got := status.NextPossible(); len(got) != 0 {
				t.Errorf("NextPossible(%s) = %v, want empty", status, got)
			}
		}
	})
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range allOrderStatuses {
		if !status.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", status)
		}
	}
	if OrderStatus("shipped").IsValid() {
		t.Error("IsValid(shipped) = true, want false")
	}
}

func TestOrderStatusLabelAndColor(t *testing.T) {
	t.Run("known status", func(t *testing.T) {
		if got := OrderOutForDelivery.Label(); got != "Out for Delivery" {
			t.Errorf("Label(out_for_delivery) = %q", got)
		}
		if got := OrderDelivered.Color(); got != "green" {
			t.Errorf("Color(delivered) = %q", got)
		}
	})

	t.Run("unknown status degrades silently", func(t *testing.T) {
		unknown := OrderStatus("teleporting")
		if got := unknown.Label(); got != "teleporting" {
			t.Errorf("Label(unknown) = %q, want raw value", got)
		}
		if got := unknown.Color(); got != "gray" {
			t.Errorf("Color(unknown) = %q, want gray", got)
		}
	})
}

// The cancellation predicate is narrower than the transition table: the
// table allows cancelling ready and out_for_delivery orders through a
// staff status update, but the customer-facing predicate does not.
func TestOrderCanBeCancelled(t *testing.T) {
	cancellable := map[OrderStatus]bool{
		OrderPending:   true,
		OrderConfirmed: true,
		OrderPreparing: true,
	}

	for _, status := range allOrderStatuses {
		order := &Order{Status: status}
		if got := order.CanBeCancelled(); got != cancellable[status] {
			t.Errorf("CanBeCancelled(%s) = %v, want %v", status, got, cancellable[status])
		}
	}

	// Divergence pinned on purpose: the table says yes, the predicate says no.
	if !OrderReady.CanTransitionTo(OrderCancelled) {
		t.Error("transition table should allow ready -> cancelled")
	}
	if (&Order{Status: OrderReady}).CanBeCancelled() {
		t.Error("CanBeCancelled(ready) should stay false")
	}
}
