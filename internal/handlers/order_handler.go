package handlers

import (
	"net/http"
	"strconv"

	"food_market/internal/models"
	"food_market/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type checkoutItem struct {
	DishID         uint   `json:"dish_id" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	Customizations string `json:"customizations"`
}

type checkoutRequest struct {
	UserID          uint           `json:"user_id" binding:"required"`
	VendorID        uint           `json:"vendor_id" binding:"required"`
	DeliveryAddress string         `json:"delivery_address" binding:"required"`
	DeliveryCity    string         `json:"delivery_city"`
	ContactName     string         `json:"contact_name"`
	ContactPhone    string         `json:"contact_phone"`
	PaymentMethod   string         `json:"payment_method"`
	Items           []checkoutItem `json:"items" binding:"required,min=1"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order := &models.Order{
		UserID:          req.UserID,
		VendorID:        req.VendorID,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCity:    req.DeliveryCity,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		PaymentMethod:   req.PaymentMethod,
	}
	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			DishID:         item.DishID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		}
	}

	if err := h.orderService.CreateOrder(order, items); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	snapshot, err := h.orderService.GetStatusSnapshot(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *OrderHandler) GetTracking(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	history, err := h.orderService.GetTrackingHistory(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

type transitionRequest struct {
	Status    string   `json:"status" binding:"required"`
	ChangedBy uint     `json:"changed_by" binding:"required"`
	Note      string   `json:"note"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.RequestTransition(id, services.TransitionRequest{
		Target:    models.OrderStatus(req.Status),
		ChangedBy: req.ChangedBy,
		Note:      req.Note,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type cancelRequest struct {
	ChangedBy uint   `json:"changed_by" binding:"required"`
	Note      string `json:"note"`
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CancelOrder(id, req.ChangedBy, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type locationRequest struct {
	CourierID uint    `json:"courier_id" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

func (h *OrderHandler) RecordLocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.RecordDeliveryLocation(id, req.CourierID, req.Latitude, req.Longitude); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, err
	}
	return uint(id), nil
}
