package handlers

import (
	"net/http"

	"food_market/internal/models"
	"food_market/internal/services"

	"github.com/gin-gonic/gin"
)

// MarketHandler serves the storefront reads and user registration.
type MarketHandler struct {
	catalogService services.CatalogService
	userService    services.UserService
}

func NewMarketHandler(catalogService services.CatalogService, userService services.UserService) *MarketHandler {
	return &MarketHandler{catalogService: catalogService, userService: userService}
}

func (h *MarketHandler) GetVendors(c *gin.Context) {
	vendors, err := h.catalogService.GetVendors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *MarketHandler) GetVendorMenu(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	dishes, err := h.catalogService.GetVendorMenu(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *MarketHandler) GetDishReviews(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	reviews, err := h.catalogService.GetDishReviews(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type createUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" binding:"required,min=8"`
}

func (h *MarketHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
	if err := h.userService.CreateUser(user, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
