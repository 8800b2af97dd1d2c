package booking

import (
	"context"

	"github.com/salonbook/salon-scheduler/internal/audit"
	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/models"
	"github.com/salonbook/salon-scheduler/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	auditDisp AuditDispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	profileID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	profile, err := uc.repo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForProfile(ctx, bookingID, profileID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(profile.Timezone)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		UserID:    &userID,
		Action:    "booking_completed",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
