package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calendarHandler "github.com/clinicdesk/calendar-api/internal/handler/calendar"
	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/refdata"
	"github.com/clinicdesk/calendar-api/internal/repository/localstore"
	"github.com/clinicdesk/calendar-api/internal/service/calendarview"
)

func setupRouter(t *testing.T) (*gin.Engine, *localstore.AppointmentRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := localstore.NewAppointmentRepository(filepath.Join(t.TempDir(), "appointments.json"))
	svc := calendarview.NewService(repo, refdata.NewStore())

	router := gin.New()
	calendarHandler.NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

func seed(t *testing.T, repo *localstore.AppointmentRepository, doctorID, date, timeOfDay string) {
	t.Helper()
	_, err := repo.Add(context.Background(), model.AppointmentDraft{
		PatientID: "1",
		DoctorID:  model.ID(doctorID),
		Date:      date,
		Time:      timeOfDay,
		Duration:  30,
		Type:      "consultation",
	})
	require.NoError(t, err)
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMonthView(t *testing.T) {
	router, repo := setupRouter(t)
	seed(t, repo, "2", "2024-03-15", "09:00")
	seed(t, repo, "3", "2024-03-15", "10:00")

	w := get(t, router, "/api/v1/calendar/month?month=2024-03")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status string          `json:"status"`
		Data   model.MonthView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "2024-03", resp.Data.Month)
	assert.Zero(t, len(resp.Data.Cells)%7)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Shown)
}

func TestMonthViewWithFilter(t *testing.T) {
	router, repo := setupRouter(t)
	seed(t, repo, "2", "2024-03-15", "09:00")
	seed(t, repo, "3", "2024-03-15", "10:00")

	w := get(t, router, "/api/v1/calendar/month?month=2024-03&doctor_id=3")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.MonthView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Shown)
}

func TestMonthViewBadMonth(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/v1/calendar/month?month=March-2024")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDayView(t *testing.T) {
	router, repo := setupRouter(t)
	seed(t, repo, "2", "2024-03-15", "16:00")
	seed(t, repo, "2", "2024-03-15", "08:00")
	seed(t, repo, "2", "2024-03-16", "09:00")

	w := get(t, router, "/api/v1/calendar/day?date=2024-03-15")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data model.DayView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "2024-03-15", resp.Data.Date)
	assert.Equal(t, "2024-03-14", resp.Data.PrevDate)
	assert.Equal(t, "2024-03-16", resp.Data.NextDate)
	assert.Equal(t, 2, resp.Data.Count)
	require.Len(t, resp.Data.Appointments, 2)
	assert.Equal(t, "16:00", resp.Data.Appointments[0].Time)
	assert.Equal(t, "Dhoni", resp.Data.Appointments[0].PatientName)
}

func TestDayViewBadDate(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/v1/calendar/day?date=15/03/2024")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
