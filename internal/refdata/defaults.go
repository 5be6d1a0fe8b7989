package refdata

import (
	"fmt"

	"github.com/clinicdesk/calendar-api/internal/model"
)

func defaultPatients() []model.Patient {
	return []model.Patient{
		{ID: "1", Name: "Dhoni", Phone: "+91-1234567891", Email: "dhoni@email.com"},
		{ID: "2", Name: "Virat Kohli", Phone: "+91-1234567892", Email: "virat.kohli@email.com"},
		{ID: "3", Name: "Rohit sharma", Phone: "+91-1234567895", Email: "rohith.sharma@email.com"},
		{ID: "4", Name: "Raina", Phone: "+91-7894561237", Email: "raina@email.com"},
		{ID: "5", Name: "Dravid", Phone: "+91-5467891239", Email: "dravid@email.com"},
		{ID: "6", Name: "AB de Villiers", Phone: "+91-3214567895", Email: "abd@email.com"},
		{ID: "7", Name: "Ruturaj gaikwad", Phone: "+91-5895215514", Email: "ruturajgaikwad@email.com"},
	}
}

func defaultDoctors() []model.Doctor {
	return []model.Doctor{
		{ID: "1", Name: "Dr. Messi", Specialization: "General Medicine", Phone: "+91-1234567890"},
		{ID: "2", Name: "Dr. Ronaldo", Specialization: "Cardiology", Phone: "+91-1234590000"},
		{ID: "3", Name: "Dr. Neymar", Specialization: "Heart", Phone: "+91-1234561111"},
		{ID: "4", Name: "Dr. Mbappe", Specialization: "Orthopedics", Phone: "+91-1234522222"},
		{ID: "5", Name: "Dr. Salah", Specialization: "Dermatology", Phone: "+91-1234235725"},
	}
}

// defaultTimeSlots enumerates 15-minute slots from 08:00 through 17:45.
func defaultTimeSlots() []string {
	slots := make([]string, 0, 40)
	for h := 8; h < 18; h++ {
		for m := 0; m < 60; m += 15 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}
