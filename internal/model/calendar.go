package model

// DaySummary is the condensed representation shown in a month-grid cell: the
// first appointment of the day list plus the count of the remaining ones.
type DaySummary struct {
	First     *Appointment `json:"first,omitempty"`
	MoreCount int          `json:"moreCount"`
}

// AppointmentView is an appointment with roster names resolved for display.
// Unknown ids resolve to the fallback names, never to an error.
type AppointmentView struct {
	Appointment
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
}

// DayCell is one cell of the month grid.
type DayCell struct {
	Date         string            `json:"date"`
	InMonth      bool              `json:"inMonth"`
	Today        bool              `json:"today"`
	First        *AppointmentView  `json:"first,omitempty"`
	MoreCount    int               `json:"moreCount"`
	Appointments []AppointmentView `json:"appointments"`
}

// MonthView is a whole number of 7-day weeks covering the month, plus the
// filter bookkeeping shown in the UI ("Showing X of Y appointments").
type MonthView struct {
	Month string    `json:"month"`
	Cells []DayCell `json:"cells"`
	Total int       `json:"total"`
	Shown int       `json:"shown"`
}

// DayView is the single-day list used by the narrow-viewport layout.
type DayView struct {
	Date         string            `json:"date"`
	PrevDate     string            `json:"prevDate"`
	NextDate     string            `json:"nextDate"`
	Count        int               `json:"count"`
	Appointments []AppointmentView `json:"appointments"`
}
