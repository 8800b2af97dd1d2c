package booking

import (
	"context"
	"time"

	"github.com/salonbook/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetProfileByID(
		ctx context.Context,
		id uint,
	) (*models.Profile, error)

	GetProfileBySlug(
		ctx context.Context,
		slug string,
	) (*models.Profile, error)

	// -------- Service --------
	GetActiveService(
		ctx context.Context,
		profileID uint,
		serviceID uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
		profileID uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		profileID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (conditional insert) --------

	// CreateBooking inserts the booking only if no non-cancelled booking of
	// the same profile overlaps [StartTime, EndTime). The check and the
	// insert happen in one transaction; a conflict surfaces as the
	// "slot_taken" business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForProfile(
		ctx context.Context,
		bookingID uint,
		profileID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		profileID uint,
	) ([]models.AvailabilityWindow, error)

	ListBookingsForDay(
		ctx context.Context,
		profileID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		profileID uint,
		start time.Time,
		end time.Time,
		status string,
	) ([]models.Booking, error)

	// -------- Dashboard --------
	CountBookings(
		ctx context.Context,
		profileID uint,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountActiveServices(
		ctx context.Context,
		profileID uint,
	) (int64, error)
}
