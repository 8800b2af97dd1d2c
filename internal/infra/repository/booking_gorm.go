package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *BookingGormRepository) GetProfileByID(
	ctx context.Context,
	id uint,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *BookingGormRepository) GetProfileBySlug(
	ctx context.Context,
	slug string,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	profileID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ? AND active = true", serviceID, profileID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
	profileID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("profile_id = ? AND active = true", profileID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	profileID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND phone = ?", profileID, phone).
		First(&client).Error

	if err == nil {
		// Returning client: keep the latest name/email they typed in.
		if client.Name != name || (email != "" && client.Email != email) {
			client.Name = name
			if email != "" {
				client.Email = email
			}
			if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
				return nil, err
			}
		}
		return &client, nil
	}

	client = models.Client{
		ProfileID: profileID,
		Name:      name,
		Phone:     phone,
		Email:     email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		// Two first-time bookings from the same phone can race here; the
		// unique index on (profile_id, phone) lets exactly one insert win,
		// the loser picks up the winner's row.
		if httperr.IsUniqueViolation(err) {
			if ferr := r.db.WithContext(ctx).
				Where("profile_id = ? AND phone = ?", profileID, phone).
				First(&client).Error; ferr == nil {
				return &client, nil
			}
		}
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (conditional insert)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"profile_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
				b.ProfileID,
				b.EndTime,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(b).Error
	})

	// The exclusion constraint catches the insert that lost a race the
	// row lock could not see (no rows to lock yet on both sides).
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForProfile(
	ctx context.Context,
	bookingID uint,
	profileID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", bookingID, profileID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailability(
	ctx context.Context,
	profileID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	profileID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "status").
		Where(
			"profile_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			profileID, end, start,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	profileID uint,
	start time.Time,
	end time.Time,
	status string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"profile_id = ? AND start_time >= ? AND start_time < ?",
			profileID, start, end,
		)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order("start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *BookingGormRepository) CountBookings(
	ctx context.Context,
	profileID uint,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"profile_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			profileID, start, end,
		).
		Count(&count).Error

	return count, err
}

func (r *BookingGormRepository) CountActiveServices(
	ctx context.Context,
	profileID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("profile_id = ? AND active = true", profileID).
		Count(&count).Error

	return count, err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
