// Package refdata holds the fixed roster tables: patients, doctors, and the
// bookable time slots. The tables are loaded once at process start and never
// mutated afterwards, so lookups need no locking.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clinicdesk/calendar-api/internal/model"
)

const (
	UnknownPatient = "Unknown Patient"
	UnknownDoctor  = "Unknown Doctor"
)

type Store struct {
	patients  []model.Patient
	doctors   []model.Doctor
	timeSlots []string

	patientNames map[model.ID]string
	doctorNames  map[model.ID]string
	slotSet      map[string]struct{}
}

// NewStore builds a store over the compiled-in roster.
func NewStore() *Store {
	return newStore(defaultPatients(), defaultDoctors(), defaultTimeSlots())
}

// Load reads a roster override file. The file replaces whichever tables it
// carries; omitted tables keep their defaults.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file struct {
		Patients  []model.Patient `json:"patients"`
		Doctors   []model.Doctor  `json:"doctors"`
		TimeSlots []string        `json:"timeSlots"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	patients := file.Patients
	if len(patients) == 0 {
		patients = defaultPatients()
	}
	doctors := file.Doctors
	if len(doctors) == 0 {
		doctors = defaultDoctors()
	}
	slots := file.TimeSlots
	if len(slots) == 0 {
		slots = defaultTimeSlots()
	}

	return newStore(patients, doctors, slots), nil
}

func newStore(patients []model.Patient, doctors []model.Doctor, slots []string) *Store {
	s := &Store{
		patients:     patients,
		doctors:      doctors,
		timeSlots:    slots,
		patientNames: make(map[model.ID]string, len(patients)),
		doctorNames:  make(map[model.ID]string, len(doctors)),
		slotSet:      make(map[string]struct{}, len(slots)),
	}
	for _, p := range patients {
		s.patientNames[p.ID] = p.Name
	}
	for _, d := range doctors {
		s.doctorNames[d.ID] = d.Name
	}
	for _, t := range slots {
		s.slotSet[t] = struct{}{}
	}
	return s
}

func (s *Store) Patients() []model.Patient {
	return s.patients
}

func (s *Store) Doctors() []model.Doctor {
	return s.doctors
}

func (s *Store) TimeSlots() []string {
	return s.timeSlots
}

// PatientName resolves a display name. Appointments may reference ids that
// no longer exist in the roster; those resolve to the fallback, not an error.
func (s *Store) PatientName(id model.ID) string {
	if name, ok := s.patientNames[id]; ok {
		return name
	}
	return UnknownPatient
}

func (s *Store) DoctorName(id model.ID) string {
	if name, ok := s.doctorNames[id]; ok {
		return name
	}
	return UnknownDoctor
}

// ValidSlot reports whether t is one of the bookable time-of-day strings.
func (s *Store) ValidSlot(t string) bool {
	_, ok := s.slotSet[t]
	return ok
}
