package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/models"
)

func TestConfirmBooking_HappyPath(t *testing.T) {
	repo := new(MockRepository)
	auditSpy := &stubAudit{}

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).
		Return(&models.Booking{ID: 42, ProfileID: 1, Status: string(domain.StatusPending)}, nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewConfirmBooking(repo, auditSpy)

	b, err := uc.Execute(context.Background(), 1, 5, 42)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	require.NotNil(t, b.ConfirmedAt)

	require.Len(t, auditSpy.events, 1)
	assert.Equal(t, "booking_confirmed", auditSpy.events[0].Action)
	require.NotNil(t, auditSpy.events[0].UserID)
	assert.Equal(t, uint(5), *auditSpy.events[0].UserID)

	repo.AssertExpectations(t)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).Return(nil, assert.AnError)

	uc := NewConfirmBooking(repo, &stubAudit{})

	_, err := uc.Execute(context.Background(), 1, 5, 42)

	assertBusiness(t, err, "booking_not_found")
}

func TestConfirmBooking_AlreadyConfirmed(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).
		Return(&models.Booking{ID: 42, ProfileID: 1, Status: string(domain.StatusConfirmed)}, nil)

	uc := NewConfirmBooking(repo, &stubAudit{})

	_, err := uc.Execute(context.Background(), 1, 5, 42)

	assertBusiness(t, err, "invalid_state")
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_FromConfirmed(t *testing.T) {
	repo := new(MockRepository)
	auditSpy := &stubAudit{}

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).
		Return(&models.Booking{ID: 42, ProfileID: 1, Status: string(domain.StatusConfirmed)}, nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewCancelBooking(repo, auditSpy)

	b, err := uc.Execute(context.Background(), 1, 5, 42)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	require.Len(t, auditSpy.events, 1)
	assert.Equal(t, "booking_cancelled", auditSpy.events[0].Action)
}

func TestCancelBooking_CompletedIsTerminal(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).
		Return(&models.Booking{ID: 42, ProfileID: 1, Status: string(domain.StatusCompleted)}, nil)

	uc := NewCancelBooking(repo, &stubAudit{})

	_, err := uc.Execute(context.Background(), 1, 5, 42)

	assertBusiness(t, err, "invalid_state")
}

func TestCompleteBooking_HappyPath(t *testing.T) {
	repo := new(MockRepository)
	auditSpy := &stubAudit{}

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).
		Return(&models.Booking{ID: 42, ProfileID: 1, Status: string(domain.StatusConfirmed)}, nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewCompleteBooking(repo, auditSpy)

	b, err := uc.Execute(context.Background(), 1, 5, 42)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)
	require.Len(t, auditSpy.events, 1)
	assert.Equal(t, "booking_completed", auditSpy.events[0].Action)
}

func TestCompleteBooking_PendingRejected(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetBookingForProfile", mock.Anything, uint(42), uint(1)).
		Return(&models.Booking{ID: 42, ProfileID: 1, Status: string(domain.StatusPending)}, nil)

	uc := NewCompleteBooking(repo, &stubAudit{})

	_, err := uc.Execute(context.Background(), 1, 5, 42)

	assertBusiness(t, err, "invalid_state")
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}
