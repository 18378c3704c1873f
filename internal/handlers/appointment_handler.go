package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/receipt"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
	ucAppointment "github.com/BruksfildServices01/garage-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/garage-scheduler/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	scheduler *ucAppointment.Scheduler
	catalog   *ucCatalog.Store
	shopName  string
}

func NewAppointmentHandler(
	scheduler *ucAppointment.Scheduler,
	catalog *ucCatalog.Store,
	shopName string,
) *AppointmentHandler {
	return &AppointmentHandler{
		scheduler: scheduler,
		catalog:   catalog,
		shopName:  shopName,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientName string  `json:"client_name" binding:"required"`
	StaffID    int64   `json:"staff_id"`
	ServiceIDs []int64 `json:"service_ids"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`

	Price        float64 `json:"price" binding:"min=0"`
	MaterialCost float64 `json:"material_cost" binding:"min=0"`
	Notes        string  `json:"notes"`

	CarMake  string `json:"car_make"`
	CarModel string `json:"car_model"`
	CarYear  int    `json:"car_year"`
}

func (r AppointmentRequest) input(sess session.Session) (ucAppointment.CreateAppointmentInput, error) {
	start, err := parseDateTimeIn(sess, r.Date, r.Time)
	if err != nil {
		return ucAppointment.CreateAppointmentInput{}, err
	}

	return ucAppointment.CreateAppointmentInput{
		ClientName:   r.ClientName,
		StaffID:      r.StaffID,
		ServiceIDs:   r.ServiceIDs,
		StartTime:    start,
		Price:        r.Price,
		MaterialCost: r.MaterialCost,
		Notes:        r.Notes,
		CarMake:      r.CarMake,
		CarModel:     r.CarModel,
		CarYear:      r.CarYear,
	}, nil
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	in, err := req.input(sess)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.scheduler.CreateAppointment(c.Request.Context(), sess, in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, h.scheduler.View(sess, ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	in, err := req.input(sess)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	if _, found := h.owned(sess, id); !found {
		writeError(c, domain.ErrNotFound)
		return
	}

	ap, err := h.scheduler.UpdateAppointment(c.Request.Context(), sess, ucAppointment.UpdateAppointmentInput{
		ID:                     id,
		CreateAppointmentInput: in,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, h.scheduler.View(sess, ap))
}

// owned looks an appointment up by id within the session's staff. Other
// staff members' bookings answer as not found, the same as the listings.
func (h *AppointmentHandler) owned(sess session.Session, id int64) (models.Appointment, bool) {
	ap, found := h.scheduler.Appointment(id)
	if !found || ap.StaffID != sess.StaffID() {
		return models.Appointment{}, false
	}
	return ap, true
}

// Delete removes without confirmation; the client asks first.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, found := h.owned(sess, id); !found {
		writeError(c, domain.ErrNotFound)
		return
	}

	if !h.scheduler.DeleteAppointment(c.Request.Context(), sess, id) {
		writeError(c, domain.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	date, ok := dateQuery(c, sess)
	if !ok {
		return
	}

	httpresp.List(c, h.scheduler.ListAppointmentsByDate(sess, date))
}

func (h *AppointmentHandler) ListByWeek(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	date, ok := dateQuery(c, sess)
	if !ok {
		return
	}

	httpresp.List(c, h.scheduler.ListAppointmentsByWeek(sess, date))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  h.scheduler.ListAppointmentsByMonth(sess, year, time.Month(month)),
	})
}

// dateQuery reads ?date=YYYY-MM-DD, defaulting to today.
func dateQuery(c *gin.Context, sess session.Session) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return sess.StartOfToday(), true
	}

	date, err := parseDateIn(sess, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return time.Time{}, false
	}
	return date, true
}

// ======================================================
// RECEIPT
// ======================================================

func (h *AppointmentHandler) Receipt(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, found := h.owned(sess, id)
	if !found {
		writeError(c, domain.ErrNotFound)
		return
	}

	services := make([]models.Service, 0, len(ap.ServiceIDs))
	for _, sid := range ap.ServiceIDs {
		if svc, ok := h.catalog.Service(sid); ok {
			services = append(services, svc)
		}
	}

	var buf bytes.Buffer
	err := receipt.Render(&buf, receipt.Receipt{
		Shop:        h.shopName,
		StaffName:   sess.Staff.Name,
		Appointment: ap,
		Services:    services,
		Vehicle:     ucAppointment.Vehicle(ap),
		Location:    sess.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="receipt-%d.pdf"`, ap.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
