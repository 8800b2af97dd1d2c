package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbook/salon-scheduler/internal/middleware"
	"github.com/salonbook/salon-scheduler/internal/models"
	"github.com/salonbook/salon-scheduler/internal/validators"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type AvailabilityDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityUpdateRequest struct {
	Days []AvailabilityDayConfig `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	profileIDVal, _ := c.Get(middleware.ContextProfileID)
	profileID := profileIDVal.(uint)

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("profile_id = ?", profileID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update replaces the whole weekly schedule in one shot, the same way the
// settings form submits it. Edits apply to future slot computations only;
// existing bookings are never invalidated retroactively.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	profileIDVal, _ := c.Get(middleware.ContextProfileID)
	profileID := profileIDVal.(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true

		if !d.Active {
			continue
		}

		if !validators.IsValidTimeOfDay(d.StartTime) || !validators.IsValidTimeOfDay(d.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_of_day"})
			return
		}

		start, _ := time.Parse("15:04", d.StartTime)
		end, _ := time.Parse("15:04", d.EndTime)
		if !start.Before(end) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_must_precede_end"})
			return
		}
	}

	if err := h.db.Where("profile_id = ?", profileID).Delete(&models.AvailabilityWindow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_availability"})
		return
	}

	var toCreate []models.AvailabilityWindow
	for _, d := range req.Days {
		toCreate = append(toCreate, models.AvailabilityWindow{
			ProfileID: profileID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
