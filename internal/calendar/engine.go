// Package calendar is the projection engine: it turns the flat appointment
// collection plus a display context into per-day presentation data. Every
// function here is pure; the caller owns loading, persistence, and state.
package calendar

import (
	"time"

	"github.com/clinicdesk/calendar-api/internal/model"
)

// ApplyFilters keeps an appointment iff each active filter matches exactly.
// Ids are already normalized by model.ID, so equality is string-safe even
// when one side originated as a number.
func ApplyFilters(appts []model.Appointment, f model.FilterState) []model.Appointment {
	if !f.IsActive() {
		return appts
	}

	filtered := make([]model.Appointment, 0, len(appts))
	for _, a := range appts {
		if !f.DoctorID.IsZero() && a.DoctorID != f.DoctorID {
			continue
		}
		if !f.PatientID.IsZero() && a.PatientID != f.PatientID {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// MonthGridDays returns every date from the Sunday on or before the 1st of
// the month through the Saturday on or after its last day, inclusive. The
// result is always a whole number of 7-day weeks.
func MonthGridDays(monthDate time.Time) []time.Time {
	year, month, _ := monthDate.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, monthDate.Location())
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AppointmentsForDate selects the appointments whose date string matches the
// given day exactly. Input order is preserved; the day list is deliberately
// never re-sorted by time-of-day.
func AppointmentsForDate(appts []model.Appointment, date time.Time) []model.Appointment {
	key := date.Format(model.DateLayout)

	var day []model.Appointment
	for _, a := range appts {
		if a.Date == key {
			day = append(day, a)
		}
	}
	return day
}

// BucketByDate partitions the collection by date string. Each appointment
// lands under exactly one key, in input order.
func BucketByDate(appts []model.Appointment) map[string][]model.Appointment {
	buckets := make(map[string][]model.Appointment)
	for _, a := range appts {
		buckets[a.Date] = append(buckets[a.Date], a)
	}
	return buckets
}

// DaySummary condenses a day list into what a month-grid cell displays: the
// element at index 0 (insertion order, see AppointmentsForDate) and the
// count of the rest.
func DaySummary(dayAppts []model.Appointment) model.DaySummary {
	if len(dayAppts) == 0 {
		return model.DaySummary{}
	}
	return model.DaySummary{
		First:     &dayAppts[0],
		MoreCount: len(dayAppts) - 1,
	}
}

// DayNavigate moves the day cursor by deltaDays calendar days, unclamped, so
// navigation rolls over month and year boundaries naturally.
func DayNavigate(currentDate time.Time, deltaDays int) time.Time {
	return currentDate.AddDate(0, 0, deltaDays)
}
