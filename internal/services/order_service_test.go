package services

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"food_market/internal/models"
	"food_market/internal/repository"

	"gorm.io/gorm"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestOrderService(db *gorm.DB) OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewOrderTrackingRepository(db),
		repository.NewDeliveryLocationRepository(db),
		repository.NewVendorRepository(db),
		repository.NewDishRepository(db),
		repository.NewSettingsRepository(db),
		nil,
		time.Minute,
	)
}

func placeOrder(t *testing.T, db *gorm.DB, svc OrderService) *models.Order {
	t.Helper()

	seedSettings(t, db)
	customer := seedCustomer(t, db)
	vendor, dishes := seedVendorWithMenu(t, db)

	order := &models.Order{
		UserID:          customer.ID,
		VendorID:        vendor.ID,
		DeliveryAddress: "5 Ring Road",
		PaymentMethod:   "card",
	}
	items := []models.OrderItem{
		{DishID: dishes[0].ID, Quantity: 2},
		{DishID: dishes[1].ID, Quantity: 1},
	}
	if err := svc.CreateOrder(order, items); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return order
}

// advance walks the order through the given statuses, failing on any step.
func advance(t *testing.T, svc OrderService, orderID uint, statuses ...models.OrderStatus) {
	t.Helper()
	for _, status := range statuses {
		if _, err := svc.RequestTransition(orderID, TransitionRequest{Target: status, ChangedBy: 1}); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	order := placeOrder(t, db, svc)

	if order.Status != models.OrderPending {
		t.Errorf("new order status = %s, want pending", order.Status)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Errorf("order number = %q, want ORD- prefix", order.OrderNumber)
	}

	// 2 x 12.50 + 1 x 6.00 = 31.00; 10% tax; vendor delivery fee 3.00
	if !almostEqual(order.Subtotal, 31.00) {
		t.Errorf("subtotal = %.2f, want 31.00", order.Subtotal)
	}
	if !almostEqual(order.Tax, 3.10) {
		t.Errorf("tax = %.2f, want 3.10", order.Tax)
	}
	if !almostEqual(order.DeliveryFee, 3.00) {
		t.Errorf("delivery fee = %.2f, want 3.00", order.DeliveryFee)
	}
	if !almostEqual(order.Total, 37.10) {
		t.Errorf("total = %.2f, want 37.10", order.Total)
	}

	// Checkout writes the initial tracking row.
	history, err := svc.GetTrackingHistory(order.ID)
	if err != nil {
		t.Fatalf("GetTrackingHistory: %v", err)
	}
	if len(history) != 1 || history[0].Status != models.OrderPending {
		t.Errorf("tracking history = %+v, want single pending entry", history)
	}
}

func TestRequestTransition(t *testing.T) {
	t.Run("legal step appends tracking", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)

		updated, err := svc.RequestTransition(order.ID, TransitionRequest{
			Target:    models.OrderConfirmed,
			ChangedBy: 7,
			Note:      "accepted by kitchen",
		})
		if err != nil {
			t.Fatalf("RequestTransition: %v", err)
		}
		if updated.Status != models.OrderConfirmed {
			t.Errorf("status = %s, want confirmed", updated.Status)
		}

		snapshot, err := svc.GetStatusSnapshot(order.ID)
		if err != nil {
			t.Fatalf("GetStatusSnapshot: %v", err)
		}
		want := []models.OrderStatus{models.OrderPreparing, models.OrderCancelled}
		if len(snapshot.NextPossibleStatuses) != 2 ||
			snapshot.NextPossibleStatuses[0] != want[0] ||
			snapshot.NextPossibleStatuses[1] != want[1] {
			t.Errorf("next possible = %v, want %v", snapshot.NextPossibleStatuses, want)
		}

		history, _ := svc.GetTrackingHistory(order.ID)
		if len(history) != 2 {
			t.Fatalf("tracking rows = %d, want 2", len(history))
		}
		last := history[len(history)-1]
		if last.Status != models.OrderConfirmed || last.ChangedBy != 7 || last.Note != "accepted by kitchen" {
			t.Errorf("tracking row = %+v", last)
		}
	})

	t.Run("out-of-table step writes nothing", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)
		advance(t, svc, order.ID, models.OrderConfirmed)

		// confirmed's legal-next is preparing or cancelled
		_, err := svc.RequestTransition(order.ID, TransitionRequest{Target: models.OrderReady, ChangedBy: 7})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}

		reloaded, _ := svc.GetOrderByID(order.ID)
		if reloaded.Status != models.OrderConfirmed {
			t.Errorf("status = %s, want confirmed untouched", reloaded.Status)
		}
		history, _ := svc.GetTrackingHistory(order.ID)
		if len(history) != 2 {
			t.Errorf("tracking rows = %d, want 2 (no audit row for rejected transition)", len(history))
		}
	})

	t.Run("unknown target rejected", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)

		_, err := svc.RequestTransition(order.ID, TransitionRequest{Target: "shipped", ChangedBy: 7})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("delivered stamps DeliveredAt and can only be refunded", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)
		advance(t, svc, order.ID,
			models.OrderConfirmed, models.OrderPreparing, models.OrderReady,
			models.OrderOutForDelivery, models.OrderDelivered)

		reloaded, _ := svc.GetOrderByID(order.ID)
		if reloaded.DeliveredAt == nil {
			t.Error("DeliveredAt not set on delivery")
		}

		if _, err := svc.RequestTransition(order.ID, TransitionRequest{Target: models.OrderCancelled, ChangedBy: 1}); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("delivered -> cancelled err = %v, want ErrInvalidTransition", err)
		}
		if _, err := svc.RequestTransition(order.ID, TransitionRequest{Target: models.OrderRefunded, ChangedBy: 1}); err != nil {
			t.Errorf("delivered -> refunded err = %v", err)
		}
	})

	t.Run("refunded is terminal", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)
		advance(t, svc, order.ID,
			models.OrderConfirmed, models.OrderPreparing, models.OrderReady,
			models.OrderOutForDelivery, models.OrderDelivered, models.OrderRefunded)

		for _, target := range []models.OrderStatus{models.OrderPending, models.OrderDelivered, models.OrderCancelled} {
			if _, err := svc.RequestTransition(order.ID, TransitionRequest{Target: target, ChangedBy: 1}); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("refunded -> %s err = %v, want ErrInvalidTransition", target, err)
			}
		}
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("within the window", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)

		cancelled, err := svc.CancelOrder(order.ID, order.UserID, "changed my mind")
		if err != nil {
			t.Fatalf("CancelOrder: %v", err)
		}
		if cancelled.Status != models.OrderCancelled {
			t.Errorf("status = %s, want cancelled", cancelled.Status)
		}
	})

	t.Run("ready order refuses customer cancel but allows staff cancel", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestOrderService(db)
		order := placeOrder(t, db, svc)
		advance(t, svc, order.ID, models.OrderConfirmed, models.OrderPreparing, models.OrderReady)

		// The predicate is narrower than the transition table on purpose.
		if _, err := svc.CancelOrder(order.ID, order.UserID, ""); !errors.Is(err, ErrNotCancellable) {
			t.Fatalf("CancelOrder err = %v, want ErrNotCancellable", err)
		}
		if _, err := svc.RequestTransition(order.ID, TransitionRequest{Target: models.OrderCancelled, ChangedBy: 7}); err != nil {
			t.Fatalf("staff cancel via transition err = %v", err)
		}
	})
}

func TestRecordDeliveryLocation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	order := placeOrder(t, db, svc)

	if err := svc.RecordDeliveryLocation(order.ID, 3, 5.556, -0.196); !errors.Is(err, ErrOrderNotInTransit) {
		t.Fatalf("err = %v, want ErrOrderNotInTransit", err)
	}

	advance(t, svc, order.ID, models.OrderConfirmed, models.OrderPreparing, models.OrderReady, models.OrderOutForDelivery)
	if err := svc.RecordDeliveryLocation(order.ID, 3, 5.556, -0.196); err != nil {
		t.Fatalf("RecordDeliveryLocation: %v", err)
	}

	var count int64
	db.Model(&models.DeliveryLocation{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("delivery locations = %d, want 1", count)
	}
}
