package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/clinicdesk/calendar-api/internal/model"
)

// ErrNotFound signals an update against an id the store has never seen (or
// has since removed). Remove deliberately does not return it; removing an
// absent id is a no-op.
var ErrNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	// GetAll returns every stored appointment in insertion order.
	GetAll(ctx context.Context) ([]model.Appointment, error)
	// Add assigns a fresh id and creation timestamp, persists, and returns
	// the stored record.
	Add(ctx context.Context, draft model.AppointmentDraft) (*model.Appointment, error)
	// Update merges the set fields of patch onto the record matched by id
	// and stamps an update timestamp. Returns ErrNotFound for unknown ids.
	Update(ctx context.Context, id model.ID, patch model.AppointmentPatch) (*model.Appointment, error)
	// Remove deletes the record if present; absent ids are a no-op.
	Remove(ctx context.Context, id model.ID) error
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NextID produces epoch-millisecond string ids, bumped by one when two calls
// land in the same millisecond. Monotonic within a process, which is all the
// uniqueness the storage contract asks for.
func NextID() model.ID {
	idMu.Lock()
	defer idMu.Unlock()

	n := time.Now().UnixMilli()
	if n <= lastID {
		n = lastID + 1
	}
	lastID = n
	return model.ID(strconv.FormatInt(n, 10))
}

// ApplyPatch merges the set fields of patch onto a copy of the record.
func ApplyPatch(a model.Appointment, patch model.AppointmentPatch) model.Appointment {
	if patch.PatientID != nil {
		a.PatientID = *patch.PatientID
	}
	if patch.DoctorID != nil {
		a.DoctorID = *patch.DoctorID
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Duration != nil {
		a.Duration = *patch.Duration
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	return a
}
