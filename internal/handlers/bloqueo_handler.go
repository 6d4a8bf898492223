package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	errBloqueoNotFound   = httperr.ErrNotFound("bloqueo_not_found", "El bloqueo no existe.")
	errBloqueoRange      = httperr.ErrValidation("invalid_range", "fecha_inicio debe ser anterior a fecha_fin.")
	errBloqueoHoursPair  = httperr.ErrValidation("invalid_hours", "Indique hora_inicio y hora_fin juntas, o ninguna.")
	errBloqueoNeedsDates = httperr.ErrValidation("missing_dates", "Un bloqueo puntual requiere fecha_inicio y fecha_fin.")
)

type BloqueoHandler struct {
	Env
}

func NewBloqueoHandler(env Env) *BloqueoHandler {
	return &BloqueoHandler{Env: env}
}

type CreateBloqueoRequest struct {
	Motivo       string     `json:"motivo" binding:"max=255"`
	FechaInicio  *time.Time `json:"fecha_inicio"`
	FechaFin     *time.Time `json:"fecha_fin"`
	EsRecurrente bool       `json:"es_recurrente"`
	DiaSemana    *int       `json:"dia_semana"`
	HoraInicio   string     `json:"hora_inicio"`
	HoraFin      string     `json:"hora_fin"`
}

// toModel validates the request shape and builds the bloqueo.
func (r CreateBloqueoRequest) toModel(estilistaID string) (models.Bloqueo, error) {
	b := models.Bloqueo{
		EstilistaID:  estilistaID,
		Motivo:       strings.TrimSpace(r.Motivo),
		EsRecurrente: r.EsRecurrente,
	}

	if r.EsRecurrente {
		if r.DiaSemana == nil || *r.DiaSemana < 0 || *r.DiaSemana > 6 {
			return b, errInvalidWeekday
		}
		if (r.HoraInicio == "") != (r.HoraFin == "") {
			return b, errBloqueoHoursPair
		}
		if r.HoraInicio != "" {
			ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
			if _, err := domain.ClockRange(ref, r.HoraInicio, r.HoraFin); err != nil {
				return b, err
			}
		}
		b.DiaSemana = r.DiaSemana
		b.HoraInicio, b.HoraFin = r.HoraInicio, r.HoraFin
		return b, nil
	}

	if r.FechaInicio == nil || r.FechaFin == nil {
		return b, errBloqueoNeedsDates
	}
	if !r.FechaInicio.Before(*r.FechaFin) {
		return b, errBloqueoRange
	}
	b.FechaInicio, b.FechaFin = r.FechaInicio, r.FechaFin
	return b, nil
}

func (h *BloqueoHandler) List(c *gin.Context) {
	est, ok := h.loadEstilista(c, c.Param("id"))
	if !ok {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	var out []models.Bloqueo
	if err := gdb.
		Where("estilista_id = ?", est.ID).
		Order("es_recurrente DESC, fecha_inicio ASC").
		Find(&out).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	httpresp.List(c, out)
}

func (h *BloqueoHandler) Create(c *gin.Context) {
	if !h.requireRole(c, frontDeskRoles) {
		return
	}

	est, ok := h.loadEstilista(c, c.Param("id"))
	if !ok {
		return
	}

	var req CreateBloqueoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := req.toModel(est.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Create(&b).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, est.SedeID, "bloqueo_created", "bloqueo", b.ID, nil)
	httpresp.Created(c, b)
}

func (h *BloqueoHandler) Delete(c *gin.Context) {
	if !h.requireRole(c, frontDeskRoles) {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	var b models.Bloqueo
	if err := gdb.First(&b, "id = ?", c.Param("id")).Error; err != nil {
		h.fail(c, repository.MapErr(err, errBloqueoNotFound))
		return
	}

	est, ok := h.loadEstilista(c, b.EstilistaID)
	if !ok {
		return
	}

	if err := gdb.Delete(&b).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, est.SedeID, "bloqueo_deleted", "bloqueo", b.ID, nil)
	c.Status(http.StatusNoContent)
}
