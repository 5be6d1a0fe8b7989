package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()

	assert.Len(t, s.Patients(), 7)
	assert.Len(t, s.Doctors(), 5)
	assert.Len(t, s.TimeSlots(), 40)

	assert.Equal(t, "08:00", s.TimeSlots()[0])
	assert.Equal(t, "17:45", s.TimeSlots()[39])
}

func TestNameLookups(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "Dhoni", s.PatientName("1"))
	assert.Equal(t, "Dr. Ronaldo", s.DoctorName("2"))

	assert.Equal(t, UnknownPatient, s.PatientName("999"))
	assert.Equal(t, UnknownDoctor, s.DoctorName(""))
}

func TestValidSlot(t *testing.T) {
	s := NewStore()

	assert.True(t, s.ValidSlot("08:00"))
	assert.True(t, s.ValidSlot("09:15"))
	assert.True(t, s.ValidSlot("17:45"))

	assert.False(t, s.ValidSlot("18:00"))
	assert.False(t, s.ValidSlot("07:45"))
	assert.False(t, s.ValidSlot("9:15"))
	assert.False(t, s.ValidSlot(""))
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	data := `{"doctors":[{"id":"d1","name":"Dr. House","specialization":"Diagnostics","phone":"+1-555-0100"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	// Overridden table replaced, omitted tables keep defaults.
	require.Len(t, s.Doctors(), 1)
	assert.Equal(t, "Dr. House", s.DoctorName("d1"))
	assert.Equal(t, UnknownDoctor, s.DoctorName("1"))
	assert.Len(t, s.Patients(), 7)
	assert.Len(t, s.TimeSlots(), 40)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
