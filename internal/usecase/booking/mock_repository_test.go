package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/salonbook/salon-scheduler/internal/audit"
	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/models"
	"github.com/salonbook/salon-scheduler/internal/notify"
)

// ======================================================
// REPOSITORY MOCK
// ======================================================

type MockRepository struct {
	mock.Mock
}

var _ domain.Repository = (*MockRepository)(nil)

func (m *MockRepository) GetProfileByID(ctx context.Context, id uint) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetProfileBySlug(ctx context.Context, slug string) (*models.Profile, error) {
	args := m.Called(ctx, slug)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetActiveService(ctx context.Context, profileID, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, profileID, serviceID)
	if s, ok := args.Get(0).(*models.Service); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListActiveServices(ctx context.Context, profileID uint) ([]models.Service, error) {
	args := m.Called(ctx, profileID)
	if s, ok := args.Get(0).([]models.Service); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetOrCreateClient(ctx context.Context, profileID uint, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, profileID, name, phone, email)
	if c, ok := args.Get(0).(*models.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetBookingForProfile(ctx context.Context, bookingID, profileID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, profileID)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListAvailability(ctx context.Context, profileID uint) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, profileID)
	if w, ok := args.Get(0).([]models.AvailabilityWindow); ok {
		return w, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListBookingsForDay(ctx context.Context, profileID uint, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, profileID, start, end)
	if b, ok := args.Get(0).([]models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListBookingsForPeriod(ctx context.Context, profileID uint, start, end time.Time, status string) ([]models.Booking, error) {
	args := m.Called(ctx, profileID, start, end, status)
	if b, ok := args.Get(0).([]models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountBookings(ctx context.Context, profileID uint, start, end time.Time) (int64, error) {
	args := m.Called(ctx, profileID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountActiveServices(ctx context.Context, profileID uint) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

// ======================================================
// DISPATCHER STUBS
// ======================================================

type stubAudit struct {
	events []audit.Event
}

func (s *stubAudit) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

type stubNotify struct {
	events []notify.BookingCreated
}

func (s *stubNotify) Dispatch(ev notify.BookingCreated) {
	s.events = append(s.events, ev)
}
