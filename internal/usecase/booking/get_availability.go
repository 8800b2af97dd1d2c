package booking

import (
	"context"

	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/dto"
	"github.com/salonbook/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the slot list for one (profile, date, service) triple.
// The date must already be midnight in the salon's timezone. Slots are
// recomputed from store state on every call; nothing is cached.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]dto.SlotDTO, error) {

	service, err := uc.repo.GetActiveService(ctx, in.ProfileID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	windows, err := uc.repo.ListAvailability(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}

	// AddDate, not +24h: a DST fall-back day is 25 hours long and bookings
	// in its last local hour must still be fetched.
	dayStart := in.Date
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		in.ProfileID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(in.Date, service.DurationMin, windows, bookings)

	out := make([]dto.SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.SlotDTO{
			Start:     s.Start.Format("15:04"),
			End:       s.End.Format("15:04"),
			Available: s.Available,
		})
	}

	return out, nil
}
