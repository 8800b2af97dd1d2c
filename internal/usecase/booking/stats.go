package booking

import (
	"context"
	"time"

	domain "github.com/salonbook/salon-scheduler/internal/domain/booking"
	"github.com/salonbook/salon-scheduler/internal/timezone"
)

type DashboardStatsResult struct {
	TodayBookings int64 `json:"today_bookings"`
	WeekBookings  int64 `json:"week_bookings"`
	MonthBookings int64 `json:"month_bookings"`
	TotalServices int64 `json:"total_services"`
}

type DashboardStats struct {
	repo domain.Repository
}

func NewDashboardStats(repo domain.Repository) *DashboardStats {
	return &DashboardStats{repo: repo}
}

// Execute counts non-cancelled bookings for today, the running week (Monday
// start) and the calendar month, plus active services.
func (uc *DashboardStats) Execute(
	ctx context.Context,
	profileID uint,
) (*DashboardStatsResult, error) {

	profile, err := uc.repo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(profile.Timezone)
	now := time.Now().In(loc)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	weekStart := dayStart.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 7)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	today, err := uc.repo.CountBookings(ctx, profileID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	week, err := uc.repo.CountBookings(ctx, profileID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	month, err := uc.repo.CountBookings(ctx, profileID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.CountActiveServices(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return &DashboardStatsResult{
		TodayBookings: today,
		WeekBookings:  week,
		MonthBookings: month,
		TotalServices: services,
	}, nil
}
