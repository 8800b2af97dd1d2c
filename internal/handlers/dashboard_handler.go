package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/httpresp"
	"github.com/salonbook/salon-scheduler/internal/middleware"
	ucBooking "github.com/salonbook/salon-scheduler/internal/usecase/booking"
)

type DashboardHandler struct {
	stats *ucBooking.DashboardStats
}

func NewDashboardHandler(stats *ucBooking.DashboardStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	result, err := h.stats.Execute(c.Request.Context(), profileID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load dashboard stats.")
		return
	}

	httpresp.OK(c, result)
}
