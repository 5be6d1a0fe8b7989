package appointment_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentHandler "github.com/clinicdesk/calendar-api/internal/handler/appointment"
	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/refdata"
	"github.com/clinicdesk/calendar-api/internal/repository/localstore"
	appointmentService "github.com/clinicdesk/calendar-api/internal/service/appointment"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := localstore.NewAppointmentRepository(filepath.Join(t.TempDir(), "appointments.json"))
	svc := appointmentService.NewService(repo, refdata.NewStore())

	router := gin.New()
	appointmentHandler.NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

type apiResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    model.Appointment `json:"data"`
}

type listResponse struct {
	Status string              `json:"status"`
	Data   []model.Appointment `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createOne(t *testing.T, router *gin.Engine) model.Appointment {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": "1",
		"doctorId":  "2",
		"date":      "2024-03-15",
		"time":      "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreateAppointment(t *testing.T) {
	router := setupRouter(t)

	created := createOne(t, router)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.ID("2"), created.DoctorID)
	assert.Equal(t, model.DefaultDuration, created.Duration)
	assert.Equal(t, model.DefaultType, created.Type)
}

// Client payloads carry ids either as strings or as bare numbers; both must
// bind.
func TestCreateAcceptsNumericIDs(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": 1,
		"doctorId":  2,
		"date":      "2024-03-15",
		"time":      "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.ID("2"), resp.Data.DoctorID)
}

func TestCreateValidation(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": "1",
		"date":      "2024-03-15",
		"time":      "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": "1",
		"doctorId":  "2",
		"date":      "2024-03-15",
		"time":      "09:07",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Message)
}

func TestGetAppointment(t *testing.T) {
	router := setupRouter(t)
	created := createOne(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/appointments/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.Data.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/appointments/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAppointmentsWithFilter(t *testing.T) {
	router := setupRouter(t)

	createOne(t, router)
	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": "3",
		"doctorId":  "4",
		"date":      "2024-03-16",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Data, 2)

	w = doJSON(t, router, http.MethodGet, "/api/v1/appointments?doctor_id=4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, model.ID("4"), filtered.Data[0].DoctorID)
}

func TestUpdateAppointment(t *testing.T) {
	router := setupRouter(t)
	created := createOne(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/v1/appointments/"+created.ID.String(), gin.H{
		"time":  "10:30",
		"notes": "rescheduled",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10:30", resp.Data.Time)
	assert.Equal(t, "rescheduled", resp.Data.Notes)
	assert.Equal(t, created.Date, resp.Data.Date)
	assert.NotNil(t, resp.Data.UpdatedAt)

	w = doJSON(t, router, http.MethodPut, "/api/v1/appointments/no-such-id", gin.H{"time": "10:30"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAppointment(t *testing.T) {
	router := setupRouter(t)
	created := createOne(t, router)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/appointments/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second delete of the same id still succeeds.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/appointments/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
