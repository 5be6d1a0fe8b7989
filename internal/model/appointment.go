package model

import "time"

// DateLayout is the calendar date form used everywhere: appointment records,
// query parameters, and grid keys.
const DateLayout = "2006-01-02"

const (
	DefaultDuration = 30
	DefaultType     = "consultation"
)

type Appointment struct {
	ID        ID         `db:"id" json:"id"`
	PatientID ID         `db:"patient_id" json:"patientId"`
	DoctorID  ID         `db:"doctor_id" json:"doctorId"`
	Date      string     `db:"date" json:"date"`
	Time      string     `db:"time" json:"time"`
	Duration  int        `db:"duration" json:"duration"`
	Type      string     `db:"type" json:"type"`
	Notes     string     `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// AppointmentDraft is a validated appointment without repository-owned
// fields. The repository assigns ID and CreatedAt at insertion.
type AppointmentDraft struct {
	PatientID ID
	DoctorID  ID
	Date      string
	Time      string
	Duration  int
	Type      string
	Notes     string
}

// AppointmentPatch carries the fields of a partial update; nil means "leave
// the stored value alone".
type AppointmentPatch struct {
	PatientID *ID
	DoctorID  *ID
	Date      *string
	Time      *string
	Duration  *int
	Type      *string
	Notes     *string
}

type CreateAppointmentRequest struct {
	PatientID ID     `json:"patientId" validate:"required"`
	DoctorID  ID     `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
	Duration  int    `json:"duration" validate:"omitempty,min=5,max=480"`
	Type      string `json:"type" validate:"max=50"`
	Notes     string `json:"notes" validate:"max=1000"`
}

type UpdateAppointmentRequest struct {
	PatientID *ID     `json:"patientId" validate:"omitempty"`
	DoctorID  *ID     `json:"doctorId" validate:"omitempty"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time" validate:"omitempty"`
	Duration  *int    `json:"duration" validate:"omitempty,min=5,max=480"`
	Type      *string `json:"type" validate:"omitempty,max=50"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
}

// FilterState restricts the visible appointment set. A zero ID means the
// corresponding filter is inactive.
type FilterState struct {
	DoctorID  ID `form:"doctor_id"`
	PatientID ID `form:"patient_id"`
}

func (f FilterState) IsActive() bool {
	return !f.DoctorID.IsZero() || !f.PatientID.IsZero()
}
