package refdata

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/calendar-api/internal/refdata"
	"github.com/clinicdesk/calendar-api/pkg/httputil"
)

type Handler struct {
	store *refdata.Store
}

func NewHandler(store *refdata.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListPatients(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.store.Patients())
}

func (h *Handler) ListDoctors(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.store.Doctors())
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.store.TimeSlots())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients", h.ListPatients)
	r.GET("/doctors", h.ListDoctors)
	r.GET("/timeslots", h.ListTimeSlots)
}
