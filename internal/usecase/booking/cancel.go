package booking

import (
	"context"

	"github.com/salonbook/salon-scheduler/internal/audit"
	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/models"
	"github.com/salonbook/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	auditDisp AuditDispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditDisp,
	}
}

// Cancelling frees the interval: the store-level overlap constraint ignores
// cancelled rows, so the slot becomes bookable again the moment this commits.
func (uc *CancelBooking) Execute(
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
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		UserID:    &userID,
		Action:    "booking_cancelled",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
