package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/httperr"
	"github.com/salonbook/salon-scheduler/internal/models"
)

func testProfile() *models.Profile {
	return &models.Profile{
		ID:       1,
		Name:     "Studio Lujza",
		Slug:     "studio-lujza",
		Email:    "owner@lujza.sk",
		Timezone: "UTC",
	}
}

func testService() *models.Service {
	return &models.Service{
		ID:          7,
		ProfileID:   1,
		Name:        "Strih",
		DurationMin: 60,
		Active:      true,
	}
}

// The allDayWindows cover every weekday so far-future dates always land
// inside an active window regardless of what day of week they fall on.
func allDayWindows() []models.AvailabilityWindow {
	out := make([]models.AvailabilityWindow, 0, 7)
	for wd := 0; wd < 7; wd++ {
		out = append(out, models.AvailabilityWindow{
			ProfileID: 1,
			Weekday:   wd,
			StartTime: "08:00",
			EndTime:   "20:00",
			Active:    true,
		})
	}
	return out
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ProfileID:   1,
		ClientName:  "Jana Novakova",
		ClientPhone: "+421900123456",
		ClientEmail: "jana@example.com",
		ServiceID:   7,
		Date:        "2030-06-10",
		Time:        "10:00",
		Notes:       "first visit",
	}
}

func assertBusiness(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, code), "want business code %q, got %v", code, err)
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	auditSpy := &stubAudit{}
	notifySpy := &stubNotify{}

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetActiveService", mock.Anything, uint(1), uint(7)).Return(testService(), nil)
	repo.On("ListAvailability", mock.Anything, uint(1)).Return(allDayWindows(), nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), "Jana Novakova", "+421900123456", "jana@example.com").
		Return(&models.Client{ID: 3, ProfileID: 1, Name: "Jana Novakova", Phone: "+421900123456"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Booking).ID = 42
		}).
		Return(nil)

	uc := NewCreateBooking(repo, auditSpy, notifySpy)

	b, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, uint(42), b.ID)
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, uint(3), b.ClientID)
	assert.Equal(t, 60*60, int(b.EndTime.Sub(b.StartTime).Seconds()))
	assert.Equal(t, 10, b.StartTime.Hour())

	require.Len(t, auditSpy.events, 1)
	assert.Equal(t, "booking_created", auditSpy.events[0].Action)

	require.Len(t, notifySpy.events, 1)
	assert.Equal(t, "owner@lujza.sk", notifySpy.events[0].OwnerEmail)
	assert.Equal(t, "Strih", notifySpy.events[0].ServiceName)

	repo.AssertExpectations(t)
}

func TestCreateBooking_MissingClientFields(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, &stubAudit{}, &stubNotify{})

	in := validInput()
	in.ClientName = "   "
	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "missing_client_fields")

	in = validInput()
	in.ClientPhone = ""
	_, err = uc.Execute(context.Background(), in)
	assertBusiness(t, err, "missing_client_fields")

	repo.AssertNotCalled(t, "GetProfileByID")
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)

	uc := NewCreateBooking(repo, &stubAudit{}, &stubNotify{})

	in := validInput()
	in.Date = "10.06.2030"
	_, err := uc.Execute(context.Background(), in)

	assertBusiness(t, err, "invalid_date_or_time")
}

func TestCreateBooking_TooSoon(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)

	uc := NewCreateBooking(repo, &stubAudit{}, &stubNotify{})

	in := validInput()
	in.Date = "2020-01-01" // long gone
	_, err := uc.Execute(context.Background(), in)

	assertBusiness(t, err, "too_soon")
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetActiveService", mock.Anything, uint(1), uint(7)).Return(nil, assert.AnError)

	uc := NewCreateBooking(repo, &stubAudit{}, &stubNotify{})

	_, err := uc.Execute(context.Background(), validInput())

	assertBusiness(t, err, "service_not_found")
}

func TestCreateBooking_OutsideAvailability(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetActiveService", mock.Anything, uint(1), uint(7)).Return(testService(), nil)

	// Morning-only windows: a 19:30 request must be rejected before insert.
	windows := allDayWindows()
	for i := range windows {
		windows[i].EndTime = "12:00"
	}
	repo.On("ListAvailability", mock.Anything, uint(1)).Return(windows, nil)

	uc := NewCreateBooking(repo, &stubAudit{}, &stubNotify{})

	in := validInput()
	in.Time = "19:30"
	_, err := uc.Execute(context.Background(), in)

	assertBusiness(t, err, "outside_availability")
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_SlotTakenFromStore(t *testing.T) {
	repo := new(MockRepository)
	auditSpy := &stubAudit{}
	notifySpy := &stubNotify{}

	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)
	repo.On("GetActiveService", mock.Anything, uint(1), uint(7)).Return(testService(), nil)
	repo.On("ListAvailability", mock.Anything, uint(1)).Return(allDayWindows(), nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Client{ID: 3}, nil)

	// The conditional insert lost the race: the store reports the conflict.
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Return(httperr.ErrBusiness("slot_taken"))

	uc := NewCreateBooking(repo, auditSpy, notifySpy)

	_, err := uc.Execute(context.Background(), validInput())

	assertBusiness(t, err, "slot_taken")
	assert.Empty(t, auditSpy.events)
	assert.Empty(t, notifySpy.events)
}

func TestCreateBooking_ZeroDurationFailsClosed(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetProfileByID", mock.Anything, uint(1)).Return(testProfile(), nil)

	svc := testService()
	svc.DurationMin = 0
	repo.On("GetActiveService", mock.Anything, uint(1), uint(7)).Return(svc, nil)

	uc := NewCreateBooking(repo, &stubAudit{}, &stubNotify{})

	_, err := uc.Execute(context.Background(), validInput())

	assertBusiness(t, err, "slot_taken")
}
