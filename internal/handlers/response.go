package handlers

import (
	"errors"
	"net/http"

	"food_market/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service errors onto HTTP statuses. Workflow conflicts
// (illegal transition, already-decided application) are 409s so the UI can
// refresh and re-offer valid actions.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrOrderNotInTransit),
		errors.Is(err, services.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
