package models

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderReady          OrderStatus = "ready"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderRefunded       OrderStatus = "refunded"
)

// orderTransitions is the single source of truth for legal status changes.
// cancelled and refunded are terminal; delivered can only move to refunded.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderReady, OrderCancelled},
	OrderReady:          {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered, OrderCancelled},
	OrderDelivered:      {OrderRefunded},
	OrderCancelled:      {},
	OrderRefunded:       {},
}

var orderStatusLabels = map[OrderStatus]string{
	OrderPending:        "Pending",
	OrderConfirmed:      "Confirmed",
	OrderPreparing:      "Preparing",
	OrderReady:          "Ready for Pickup",
	OrderOutForDelivery: "Out for Delivery",
	OrderDelivered:      "Delivered",
	OrderCancelled:      "Cancelled",
	OrderRefunded:       "Refunded",
}

var orderStatusColors = map[OrderStatus]string{
	OrderPending:        "yellow",
	OrderConfirmed:      "blue",
	OrderPreparing:      "orange",
	OrderReady:          "purple",
	OrderOutForDelivery: "indigo",
	OrderDelivered:      "green",
	OrderCancelled:      "red",
	OrderRefunded:       "gray",
}

// IsValid reports whether the value is a member of the status enum.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// NextPossible returns the legal next statuses from the transition table.
// Terminal statuses return an empty slice.
func (s OrderStatus) NextPossible() []OrderStatus {
	next := orderTransitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a legal next status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Label returns the display string for the status. Unknown values fall
// back to the raw string.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Color returns the UI color hint for the status, "gray" for unknown values.
func (s OrderStatus) Color() string {
	if color, ok := orderStatusColors[s]; ok {
		return color
	}
	return "gray"
}
