package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"food_market/internal/models"
	"food_market/internal/redis"
	"food_market/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransitionRequest carries everything a status change needs besides the
// order itself. Latitude/Longitude are optional courier coordinates that
// end up on the tracking row.
type TransitionRequest struct {
	Target    models.OrderStatus
	ChangedBy uint
	Note      string
	Latitude  *float64
	Longitude *float64
}

// StatusSnapshot is the derived, read-only view of an order's status that
// the tracking page polls. It is recomputed from the status enum on every
// read, never persisted.
type StatusSnapshot struct {
	OrderID              uint                 `json:"order_id"`
	OrderNumber          string               `json:"order_number"`
	Status               models.OrderStatus   `json:"status"`
	StatusLabel          string               `json:"status_label"`
	StatusColor          string               `json:"status_color"`
	NextPossibleStatuses []models.OrderStatus `json:"next_possible_statuses"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

type OrderService interface {
	CreateOrder(order *models.Order, items []models.OrderItem) error
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetOrdersByVendor(vendorID uint) ([]models.Order, error)
	GetTrackingHistory(orderID uint) ([]models.OrderTracking, error)
	GetStatusSnapshot(orderID uint) (*StatusSnapshot, error)
	RequestTransition(orderID uint, req TransitionRequest) (*models.Order, error)
	CancelOrder(orderID uint, changedBy uint, note string) (*models.Order, error)
	RecordDeliveryLocation(orderID, courierID uint, latitude, longitude float64) error
}

type orderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	trackingRepo repository.OrderTrackingRepository
	locationRepo repository.DeliveryLocationRepository
	vendorRepo   repository.VendorRepository
	dishRepo     repository.DishRepository
	settingsRepo repository.SettingsRepository
	cache        *redis.Client
	cacheTTL     time.Duration
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	trackingRepo repository.OrderTrackingRepository,
	locationRepo repository.DeliveryLocationRepository,
	vendorRepo repository.VendorRepository,
	dishRepo repository.DishRepository,
	settingsRepo repository.SettingsRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) OrderService {
	return &orderService{
		db:           db,
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
		locationRepo: locationRepo,
		vendorRepo:   vendorRepo,
		dishRepo:     dishRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// CreateOrder prices and persists a checkout. Item names and prices are
// snapshotted from the current menu so later edits do not rewrite history.
func (s *orderService) CreateOrder(order *models.Order, items []models.OrderItem) error {
	vendor, err := s.vendorRepo.GetByID(order.VendorID)
	if err != nil {
		return fmt.Errorf("failed to load vendor: %w", err)
	}
	if !vendor.IsVerified {
		return fmt.Errorf("vendor %d is not verified", vendor.ID)
	}

	subtotal := 0.0
	for i := range items {
		dish, err := s.dishRepo.GetByID(items[i].DishID)
		if err != nil {
			return fmt.Errorf("failed to load dish %d: %w", items[i].DishID, err)
		}
		if dish.VendorID != order.VendorID {
			return fmt.Errorf("dish %d does not belong to vendor %d", dish.ID, order.VendorID)
		}
		if !dish.IsAvailable {
			return fmt.Errorf("dish %q is not available", dish.Name)
		}

		price := dish.Price
		if dish.DiscountPrice != nil {
			price = *dish.DiscountPrice
		}

		items[i].DishName = dish.Name
		items[i].UnitPrice = price
		items[i].TotalPrice = price * float64(items[i].Quantity)
		subtotal += items[i].TotalPrice
	}

	if subtotal < vendor.MinimumOrder {
		return fmt.Errorf("order total %.2f is below the vendor minimum %.2f", subtotal, vendor.MinimumOrder)
	}

	if err := s.priceOrder(order, vendor, subtotal); err != nil {
		return err
	}

	order.OrderNumber = newOrderNumber()
	order.Status = models.OrderPending
	order.Items = items
	eta := time.Now().Add(time.Duration(vendor.DeliveryTimeMins) * time.Minute)
	order.EstimatedDeliveryTime = &eta

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderTracking{
			OrderID:   order.ID,
			Status:    models.OrderPending,
			Note:      "Order placed",
			ChangedBy: order.UserID,
		}).Error
	})
}

// priceOrder fills the monetary fields from platform settings and the
// vendor's delivery config.
func (s *orderService) priceOrder(order *models.Order, vendor *models.Vendor, subtotal float64) error {
	taxSetting, err := s.settingsRepo.GetByName(models.SettingTaxRate)
	if err != nil {
		return fmt.Errorf("failed to get tax settings: %w", err)
	}

	deliveryFee := vendor.DeliveryFee
	if deliveryFee == 0 {
		feeSetting, err := s.settingsRepo.GetByName(models.SettingDeliveryFee)
		if err != nil {
			return fmt.Errorf("failed to get delivery fee settings: %w", err)
		}
		deliveryFee = feeSetting.FixedAmount
	}

	order.Subtotal = subtotal
	order.DeliveryFee = deliveryFee
	order.Tax = subtotal * (taxSetting.PercentageValue / 100)
	order.Total = subtotal + deliveryFee + order.Tax
	return nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetOrdersByVendor(vendorID uint) ([]models.Order, error) {
	return s.orderRepo.GetByVendorID(vendorID)
}

func (s *orderService) GetTrackingHistory(orderID uint) ([]models.OrderTracking, error) {
	return s.trackingRepo.GetByOrderID(orderID)
}

// RequestTransition validates the target against the transition table, then
// persists the new status and the tracking row in one transaction. An
// out-of-table target is rejected before anything is written.
func (s *orderService) RequestTransition(orderID uint, req TransitionRequest) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if !req.Target.IsValid() || !order.Status.CanTransitionTo(req.Target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, req.Target)
	}

	previous := order.Status
	order.Status = req.Target
	if req.Target == models.OrderDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(order).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderTracking{
			OrderID:   order.ID,
			Status:    req.Target,
			Note:      req.Note,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			ChangedBy: req.ChangedBy,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteOrderStatus(order.ID); err != nil {
			logrus.WithError(err).Warn("failed to invalidate order status cache")
		}
	}

	logrus.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"from":         previous,
		"to":           req.Target,
		"changed_by":   req.ChangedBy,
	}).Info("order status changed")

	return order, nil
}

// CancelOrder applies the customer-facing cancellation window before going
// through the normal transition path.
func (s *orderService) CancelOrder(orderID uint, changedBy uint, note string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status is %s", ErrNotCancellable, order.Status)
	}

	return s.RequestTransition(orderID, TransitionRequest{
		Target:    models.OrderCancelled,
		ChangedBy: changedBy,
		Note:      note,
	})
}

func (s *orderService) RecordDeliveryLocation(orderID, courierID uint, latitude, longitude float64) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != models.OrderOutForDelivery {
		return fmt.Errorf("%w: status is %s", ErrOrderNotInTransit, order.Status)
	}

	return s.locationRepo.Create(&models.DeliveryLocation{
		OrderID:   orderID,
		CourierID: courierID,
		Latitude:  latitude,
		Longitude: longitude,
	})
}

// GetStatusSnapshot serves the tracking poll. The snapshot is pure derived
// data, so a short cache TTL only delays the display, never the workflow.
func (s *orderService) GetStatusSnapshot(orderID uint) (*StatusSnapshot, error) {
	if s.cache != nil {
		var cached StatusSnapshot
		err := s.cache.GetOrderStatus(orderID, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logrus.WithError(err).Warn("order status cache read failed")
		}
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	snapshot := &StatusSnapshot{
		OrderID:              order.ID,
		OrderNumber:          order.OrderNumber,
		Status:               order.Status,
		StatusLabel:          order.Status.Label(),
		StatusColor:          order.Status.Color(),
		NextPossibleStatuses: order.Status.NextPossible(),
		UpdatedAt:            order.UpdatedAt,
	}

	if s.cache != nil {
		if err := s.cache.SetOrderStatus(orderID, snapshot, s.cacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache order status snapshot")
		}
	}

	return snapshot, nil
}
