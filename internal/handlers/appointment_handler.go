package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/receipt"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	get          *ucAppointment.GetAppointment
	confirm      *ucAppointment.ConfirmAppointment
	cancel       *ucAppointment.CancelAppointment
	complete     *ucAppointment.CompleteAppointment
	payment      *ucAppointment.RegisterPayment
	receipt      *ucAppointment.GetReceipt
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth

	log *zap.Logger
}

func NewAppointmentHandler(
	deps ucAppointment.Deps,
	receipts ucAppointment.ReceiptQueue,
	receiptSource receipt.Source,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: ucAppointment.NewGetAvailability(deps),
		create:       ucAppointment.NewCreateAppointment(deps),
		get:          ucAppointment.NewGetAppointment(deps),
		confirm:      ucAppointment.NewConfirmAppointment(deps),
		cancel:       ucAppointment.NewCancelAppointment(deps),
		complete:     ucAppointment.NewCompleteAppointment(deps, receipts),
		payment:      ucAppointment.NewRegisterPayment(deps),
		receipt:      ucAppointment.NewGetReceipt(deps, receiptSource),
		listByDate:   ucAppointment.NewListAppointmentsByDate(deps),
		listByMonth:  ucAppointment.NewListAppointmentsByMonth(deps),
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	EstilistaID     string    `json:"estilista_id" binding:"required"`
	ClienteID       string    `json:"cliente_id" binding:"required"`
	ServicioID      string    `json:"servicio_id" binding:"required"`
	FechaHoraInicio time.Time `json:"fecha_hora_inicio" binding:"required"`
	Notas           string    `json:"notas" binding:"max=255"`
}

type CancelAppointmentRequest struct {
	Motivo string `json:"motivo" binding:"max=255"`
}

type RegisterPaymentRequest struct {
	Monto      decimal.Decimal `json:"monto"`
	MetodoPago string          `json:"metodo_pago" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Available(c *gin.Context) {
	in := domain.AvailabilityInput{
		EstilistaID: c.Query("estilista_id"),
		ServicioID:  c.Query("servicio_id"),
		Date:        c.Query("date"),
	}
	if in.EstilistaID == "" || in.ServicioID == "" || in.Date == "" {
		httperr.BadRequest(c, "missing_params", "estilista_id, servicio_id y date son obligatorios.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), middleware.Identity(c), in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.Identity(c), ucAppointment.CreateAppointmentInput{
		EstilistaID:     req.EstilistaID,
		ClienteID:       req.ClienteID,
		ServicioID:      req.ServicioID,
		FechaHoraInicio: req.FechaHoraInicio,
		Notas:           req.Notas,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	estilistaID := c.Query("estilista_id")
	date := c.Query("date")
	if estilistaID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "estilista_id y date son obligatorios.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), middleware.Identity(c), estilistaID, date, c.Query("estado"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	estilistaID := c.Query("estilista_id")
	if estilistaID == "" {
		httperr.BadRequest(c, "missing_params", "estilista_id es obligatorio.")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), middleware.Identity(c), estilistaID, year, month)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"citas": out,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(c.Request.Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
			return
		}
	}

	ap, err := h.cancel.Execute(c.Request.Context(), middleware.Identity(c), c.Param("id"), req.Motivo)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) RegisterPayment(c *gin.Context) {
	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.payment.Execute(c.Request.Context(), middleware.Identity(c), c.Param("id"), req.Monto, req.MetodoPago)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// RECEIPT
// ======================================================

func (h *AppointmentHandler) Receipt(c *gin.Context) {
	id := c.Param("id")

	pdf, err := h.receipt.Execute(c.Request.Context(), middleware.Identity(c), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="comprobante-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
