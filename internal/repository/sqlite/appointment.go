package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/repository"
	"github.com/clinicdesk/calendar-api/pkg/metrics"
)

const backend = "sqlite"

type AppointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// appointmentRow keeps timestamps as RFC 3339 text in the database and
// converts at the edge.
type appointmentRow struct {
	ID        string         `db:"id"`
	PatientID string         `db:"patient_id"`
	DoctorID  string         `db:"doctor_id"`
	Date      string         `db:"date"`
	Time      string         `db:"time"`
	Duration  int            `db:"duration"`
	Type      string         `db:"type"`
	Notes     string         `db:"notes"`
	CreatedAt string         `db:"created_at"`
	UpdatedAt sql.NullString `db:"updated_at"`
}

func (r appointmentRow) toModel() (model.Appointment, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("bad created_at for %s: %w", r.ID, err)
	}

	a := model.Appointment{
		ID:        model.ID(r.ID),
		PatientID: model.ID(r.PatientID),
		DoctorID:  model.ID(r.DoctorID),
		Date:      r.Date,
		Time:      r.Time,
		Duration:  r.Duration,
		Type:      r.Type,
		Notes:     r.Notes,
		CreatedAt: createdAt,
	}

	if r.UpdatedAt.Valid {
		updatedAt, err := time.Parse(time.RFC3339Nano, r.UpdatedAt.String)
		if err != nil {
			return model.Appointment{}, fmt.Errorf("bad updated_at for %s: %w", r.ID, err)
		}
		a.UpdatedAt = &updatedAt
	}
	return a, nil
}

// GetAll returns appointments ordered by the seq column, which preserves
// insertion order the way the JSON backend's array does.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]model.Appointment, error) {
	start := time.Now()
	query := `
		SELECT id, patient_id, doctor_id, date, time,
		       duration, type, notes, created_at, updated_at
		FROM appointments
		ORDER BY seq ASC
	`
	var rows []appointmentRow
	err := r.db.SelectContext(ctx, &rows, query)
	metrics.Default.RecordStorage(backend, "get_all", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appts := make([]model.Appointment, 0, len(rows))
	for _, row := range rows {
		a, err := row.toModel()
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, nil
}

func (r *AppointmentRepository) Add(ctx context.Context, draft model.AppointmentDraft) (*model.Appointment, error) {
	start := time.Now()
	stored := model.Appointment{
		ID:        repository.NextID(),
		PatientID: draft.PatientID,
		DoctorID:  draft.DoctorID,
		Date:      draft.Date,
		Time:      draft.Time,
		Duration:  draft.Duration,
		Type:      draft.Type,
		Notes:     draft.Notes,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO appointments (
			id, patient_id, doctor_id, date, time,
			duration, type, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		stored.ID.String(),
		stored.PatientID.String(),
		stored.DoctorID.String(),
		stored.Date,
		stored.Time,
		stored.Duration,
		stored.Type,
		stored.Notes,
		stored.CreatedAt.Format(time.RFC3339Nano),
	)
	metrics.Default.RecordStorage(backend, "add", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &stored, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id model.ID, patch model.AppointmentPatch) (*model.Appointment, error) {
	start := time.Now()

	var row appointmentRow
	getQuery := `
		SELECT id, patient_id, doctor_id, date, time,
		       duration, type, notes, created_at, updated_at
		FROM appointments
		WHERE id = ?
	`
	err := r.db.GetContext(ctx, &row, getQuery, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		metrics.Default.RecordStorage(backend, "update", start, repository.ErrNotFound)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		metrics.Default.RecordStorage(backend, "update", start, err)
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	current, err := row.toModel()
	if err != nil {
		return nil, err
	}

	merged := repository.ApplyPatch(current, patch)
	now := time.Now()
	merged.UpdatedAt = &now

	updateQuery := `
		UPDATE appointments
		SET patient_id = ?, doctor_id = ?, date = ?, time = ?,
		    duration = ?, type = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`
	_, err = r.db.ExecContext(ctx, updateQuery,
		merged.PatientID.String(),
		merged.DoctorID.String(),
		merged.Date,
		merged.Time,
		merged.Duration,
		merged.Type,
		merged.Notes,
		now.Format(time.RFC3339Nano),
		id.String(),
	)
	metrics.Default.RecordStorage(backend, "update", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &merged, nil
}

// Remove deletes by id; zero rows affected is the no-op case, not an error.
func (r *AppointmentRepository) Remove(ctx context.Context, id model.ID) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id.String())
	metrics.Default.RecordStorage(backend, "remove", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
