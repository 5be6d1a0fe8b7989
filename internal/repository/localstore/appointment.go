package localstore

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/repository"
	"github.com/clinicdesk/calendar-api/pkg/metrics"
)

const backend = "localstore"

type AppointmentRepository struct {
	path string
	mu   sync.Mutex
}

func NewAppointmentRepository(path string) *AppointmentRepository {
	return &AppointmentRepository{path: path}
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]model.Appointment, error) {
	start := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	appts := readAll(r.path)
	metrics.Default.RecordStorage(backend, "get_all", start, nil)
	return appts, nil
}

func (r *AppointmentRepository) Add(ctx context.Context, draft model.AppointmentDraft) (*model.Appointment, error) {
	start := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

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

	appts := append(readAll(r.path), stored)
	r.persist(appts)
	metrics.Default.RecordStorage(backend, "add", start, nil)
	return &stored, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id model.ID, patch model.AppointmentPatch) (*model.Appointment, error) {
	start := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	appts := readAll(r.path)
	for i, a := range appts {
		if a.ID != id {
			continue
		}
		merged := repository.ApplyPatch(a, patch)
		now := time.Now()
		merged.UpdatedAt = &now
		appts[i] = merged

		r.persist(appts)
		metrics.Default.RecordStorage(backend, "update", start, nil)
		return &merged, nil
	}

	metrics.Default.RecordStorage(backend, "update", start, repository.ErrNotFound)
	return nil, repository.ErrNotFound
}

func (r *AppointmentRepository) Remove(ctx context.Context, id model.ID) error {
	start := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	appts := readAll(r.path)
	remaining := appts[:0]
	for _, a := range appts {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}

	r.persist(remaining)
	metrics.Default.RecordStorage(backend, "remove", start, nil)
	return nil
}

// persist logs and swallows write failures: a failed write degrades to stale
// data on the next read, never to a failed user action.
func (r *AppointmentRepository) persist(appts []model.Appointment) {
	if err := writeAll(r.path, appts); err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to persist appointment store")
	}
}
