package booking

import (
	"context"
	"time"

	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/dto"
	"github.com/salonbook/salon-scheduler/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	profileID uint,
	date time.Time,
	status string,
) ([]dto.BookingListDTO, error) {

	profile, err := uc.repo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(profile.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		profileID,
		start,
		end,
		status,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			ClientName:  b.Client.Name,
			ClientPhone: b.Client.Phone,
			ServiceName: b.Service.Name,
			Notes:       b.Notes,
		})
	}

	return out, nil
}
