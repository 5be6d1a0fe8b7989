// Package calendarview assembles the projected view models the client
// renders: the month grid for wide viewports and the single-day list for
// narrow ones. It owns no state; every call loads the collection, applies
// the active filters, and projects.
package calendarview

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicdesk/calendar-api/internal/calendar"
	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/refdata"
	"github.com/clinicdesk/calendar-api/internal/repository"
)

type Service struct {
	repo   repository.AppointmentRepository
	roster *refdata.Store
	now    func() time.Time
}

func NewService(repo repository.AppointmentRepository, roster *refdata.Store) *Service {
	return &Service{
		repo:   repo,
		roster: roster,
		now:    time.Now,
	}
}

// MonthView projects the filtered collection onto the month grid containing
// monthDate. Cells outside the month are included so the grid is always
// whole weeks.
func (s *Service) MonthView(ctx context.Context, monthDate time.Time, filters model.FilterState) (*model.MonthView, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	filtered := calendar.ApplyFilters(all, filters)
	days := calendar.MonthGridDays(monthDate)
	todayKey := s.now().Format(model.DateLayout)

	cells := make([]model.DayCell, 0, len(days))
	for _, day := range days {
		dayAppts := calendar.AppointmentsForDate(filtered, day)
		summary := calendar.DaySummary(dayAppts)

		cell := model.DayCell{
			Date:         day.Format(model.DateLayout),
			InMonth:      day.Month() == monthDate.Month(),
			MoreCount:    summary.MoreCount,
			Appointments: s.resolveAll(dayAppts),
		}
		cell.Today = cell.Date == todayKey
		if summary.First != nil {
			first := s.resolve(*summary.First)
			cell.First = &first
		}
		cells = append(cells, cell)
	}

	return &model.MonthView{
		Month: monthDate.Format("2006-01"),
		Cells: cells,
		Total: len(all),
		Shown: len(filtered),
	}, nil
}

// DayView projects a single day, with the prev/next cursor dates the
// narrow-viewport navigation arrows use.
func (s *Service) DayView(ctx context.Context, date time.Time, filters model.FilterState) (*model.DayView, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	filtered := calendar.ApplyFilters(all, filters)
	dayAppts := calendar.AppointmentsForDate(filtered, date)

	return &model.DayView{
		Date:         date.Format(model.DateLayout),
		PrevDate:     calendar.DayNavigate(date, -1).Format(model.DateLayout),
		NextDate:     calendar.DayNavigate(date, 1).Format(model.DateLayout),
		Count:        len(dayAppts),
		Appointments: s.resolveAll(dayAppts),
	}, nil
}

func (s *Service) resolve(a model.Appointment) model.AppointmentView {
	return model.AppointmentView{
		Appointment: a,
		PatientName: s.roster.PatientName(a.PatientID),
		DoctorName:  s.roster.DoctorName(a.DoctorID),
	}
}

func (s *Service) resolveAll(appts []model.Appointment) []model.AppointmentView {
	views := make([]model.AppointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, s.resolve(a))
	}
	return views
}
