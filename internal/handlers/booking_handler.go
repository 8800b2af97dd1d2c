package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/httpresp"
	"github.com/salonbook/salon-scheduler/internal/middleware"
	ucBooking "github.com/salonbook/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	listByDate  *ucBooking.ListBookingsByDate
	listByMonth *ucBooking.ListBookingsByMonth
	confirmUC   *ucBooking.ConfirmBooking
	cancelUC    *ucBooking.CancelBooking
	completeUC  *ucBooking.CompleteBooking
}

func NewBookingHandler(
	listByDate *ucBooking.ListBookingsByDate,
	listByMonth *ucBooking.ListBookingsByMonth,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		confirmUC:   confirmUC,
		cancelUC:    cancelUC,
		completeUC:  completeUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDateInProfile(nil, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	status := c.Query("status")

	bookings, err := h.listByDate.Execute(
		c.Request.Context(),
		profileID,
		date,
		status,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	status := c.Query("status")

	bookings, err := h.listByMonth.Execute(
		c.Request.Context(),
		profileID,
		year,
		month,
		status,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(profileID, userID, bookingID uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), profileID, userID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(profileID, userID, bookingID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), profileID, userID, bookingID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(profileID, userID, bookingID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), profileID, userID, bookingID)
	})
}

func (h *BookingHandler) transition(
	c *gin.Context,
	run func(profileID, userID, bookingID uint) (any, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := run(profileID, userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Booking cannot change to that state.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Failed to update booking.")
		}
		return
	}

	httpresp.OK(c, b)
}
