package handlers

import (
	"net/http"

	"food_market/internal/models"
	"food_market/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	approvalService services.ApprovalService
}

func NewApplicationHandler(approvalService services.ApprovalService) *ApplicationHandler {
	return &ApplicationHandler{approvalService: approvalService}
}

// Submission endpoints

func (h *ApplicationHandler) SubmitVendorApplication(c *gin.Context) {
	var app models.VendorApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.approvalService.SubmitVendorApplication(&app); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) SubmitDishApplication(c *gin.Context) {
	var app models.DishApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.approvalService.SubmitDishApplication(&app); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) SubmitReviewApplication(c *gin.Context) {
	var app models.ReviewApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.approvalService.SubmitReviewApplication(&app); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) GetVendorApplication(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	app, err := h.approvalService.GetVendorApplication(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) GetDishApplication(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	app, err := h.approvalService.GetDishApplication(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) GetReviewApplication(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	app, err := h.approvalService.GetReviewApplication(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Admin decision endpoints. The admin identity arrives in the body as an
// opaque reference; authorization is the calling layer's problem.

type decisionRequest struct {
	AdminID uint   `json:"admin_id" binding:"required"`
	Notes   string `json:"notes"`
}

func (h *ApplicationHandler) ApproveVendorApplication(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	vendor, err := h.approvalService.ApproveVendorApplication(id, req.AdminID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved", "vendor": vendor})
}

func (h *ApplicationHandler) RejectVendorApplication(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	if err := h.approvalService.RejectVendorApplication(id, req.AdminID, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

func (h *ApplicationHandler) PutVendorApplicationUnderReview(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	if err := h.approvalService.PutVendorApplicationUnderReview(id, req.AdminID, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "under_review"})
}

func (h *ApplicationHandler) ApproveDishApplication(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	dish, err := h.approvalService.ApproveDishApplication(id, req.AdminID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved", "dish": dish})
}

func (h *ApplicationHandler) RejectDishApplication(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	if err := h.approvalService.RejectDishApplication(id, req.AdminID, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

func (h *ApplicationHandler) ApproveReviewApplication(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	review, err := h.approvalService.ApproveReviewApplication(id, req.AdminID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved", "review": review})
}

func (h *ApplicationHandler) RejectReviewApplication(c *gin.Context) {
	id, req, ok := h.decisionInput(c)
	if !ok {
		return
	}

	if err := h.approvalService.RejectReviewApplication(id, req.AdminID, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

func (h *ApplicationHandler) decisionInput(c *gin.Context) (uint, decisionRequest, bool) {
	var req decisionRequest
	id, err := parseID(c, "id")
	if err != nil {
		return 0, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return 0, req, false
	}
	return id, req, true
}
