package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/refdata"
	"github.com/clinicdesk/calendar-api/internal/repository"
	apperrors "github.com/clinicdesk/calendar-api/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	roster   *refdata.Store
	validate *validator.Validate
}

func NewService(repo repository.AppointmentRepository, roster *refdata.Store) *Service {
	return &Service{
		repo:     repo,
		roster:   roster,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context) ([]model.Appointment, error) {
	appts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// Get scans the full collection; at this scale a bulk read is the access
// path for everything, single records included.
func (s *Service) Get(ctx context.Context, id model.ID) (*model.Appointment, error) {
	appts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	for i := range appts {
		if appts[i].ID == id {
			return &appts[i], nil
		}
	}
	return nil, apperrors.NotFound("appointment", nil)
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequest("please fill in all required fields", err)
	}
	if !s.roster.ValidSlot(req.Time) {
		return nil, apperrors.BadRequest(fmt.Sprintf("%q is not a bookable time slot", req.Time), nil)
	}

	draft := model.AppointmentDraft{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Type:      req.Type,
		Notes:     req.Notes,
	}
	if draft.Duration == 0 {
		draft.Duration = model.DefaultDuration
	}
	if draft.Type == "" {
		draft.Type = model.DefaultType
	}

	stored, err := s.repo.Add(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return stored, nil
}

func (s *Service) Update(ctx context.Context, id model.ID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequest("invalid appointment fields", err)
	}
	if req.Time != nil && !s.roster.ValidSlot(*req.Time) {
		return nil, apperrors.BadRequest(fmt.Sprintf("%q is not a bookable time slot", *req.Time), nil)
	}

	patch := model.AppointmentPatch{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Type:      req.Type,
		Notes:     req.Notes,
	}

	merged, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return merged, nil
}

// Delete removes the record. Deleting an id that is already gone succeeds;
// the second click of a double-click is not an error anyone needs to see.
func (s *Service) Delete(ctx context.Context, id model.ID) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
