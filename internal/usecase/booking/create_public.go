package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonbook/salon-scheduler/internal/audit"
	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/models"
	"github.com/salonbook/salon-scheduler/internal/notify"
	"github.com/salonbook/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ProfileID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // "2006-01-02", salon-local
	Time  string // "15:04", salon-local
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  AuditDispatcher
	notify NotifyDispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	auditDisp AuditDispatcher,
	notifyDisp NotifyDispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  auditDisp,
		notify: notifyDisp,
	}
}

// Execute runs the whole submission flow: validate the client fields, resolve
// the service, re-check the candidate interval against current store state
// and insert in one transaction, then fan out audit and notification events.
// The slot list the client picked from may be stale; a conflict found here
// surfaces as slot_taken and nothing is persisted.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ClientPhone) == "" {
		return nil, httperr.ErrBusiness("missing_client_fields")
	}

	profile, err := uc.repo.GetProfileByID(ctx, in.ProfileID)
	if err != nil {
		return nil, httperr.ErrBusiness("profile_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(profile.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(profile.Timezone)
	minAllowed := now.Add(time.Duration(profile.MinAdvanceMinutes) * time.Minute)
	if start.Before(minAllowed) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetActiveService(ctx, in.ProfileID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)
	if !end.After(start) {
		// A broken duration must fail closed, never book a zero-length slot.
		return nil, httperr.ErrBusiness("slot_taken")
	}

	windows, err := uc.repo.ListAvailability(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if !withinWindow(start, end, windows) {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ProfileID,
		strings.TrimSpace(in.ClientName),
		strings.TrimSpace(in.ClientPhone),
		strings.TrimSpace(in.ClientEmail),
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		Reference: uuid.NewString(),
		ProfileID: in.ProfileID,
		ServiceID: service.ID,
		ClientID:  client.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: in.ProfileID,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	uc.notify.Dispatch(notify.BookingCreated{
		OwnerEmail:  profile.Email,
		OwnerName:   profile.Name,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		ServiceName: service.Name,
		Start:       start,
		End:         end,
		Timezone:    profile.Timezone,
	})

	return b, nil
}

// withinWindow checks that [start,end) fits inside the active availability
// window of start's weekday. Both bounds are salon-local already.
func withinWindow(start, end time.Time, windows []models.AvailabilityWindow) bool {
	weekday := int(start.Weekday())
	loc := start.Location()

	for _, w := range windows {
		if w.Weekday != weekday || !w.Active || w.StartTime == "" || w.EndTime == "" {
			continue
		}

		parseHM := func(hm string) time.Time {
			t, _ := time.Parse("15:04", hm)
			return time.Date(
				start.Year(), start.Month(), start.Day(),
				t.Hour(), t.Minute(), 0, 0,
				loc,
			)
		}

		windowStart := parseHM(w.StartTime)
		windowEnd := parseHM(w.EndTime)

		return !start.Before(windowStart) && !end.After(windowEnd)
	}

	return false
}
