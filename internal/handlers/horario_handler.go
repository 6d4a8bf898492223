package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	errInvalidWeekday   = httperr.ErrValidation("invalid_weekday", "dia_semana debe estar entre 0 (domingo) y 6 (sábado).")
	errDuplicateWeekday = httperr.ErrValidation("duplicate_weekday", "Cada día de la semana solo puede aparecer una vez.")
)

type HorarioHandler struct {
	Env
}

func NewHorarioHandler(env Env) *HorarioHandler {
	return &HorarioHandler{Env: env}
}

// ======================================================
// DTOs
// ======================================================

type HorarioDTO struct {
	DiaSemana  int    `json:"dia_semana"`
	HoraInicio string `json:"hora_inicio" binding:"required"`
	HoraFin    string `json:"hora_fin" binding:"required"`
}

type ReplaceHorariosRequest struct {
	Dias []HorarioDTO `json:"dias" binding:"dive"`
}

// validateWeek checks weekday range, uniqueness and that each day is a
// proper HH:MM range.
func validateWeek(dias []HorarioDTO) error {
	seen := map[int]bool{}
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, d := range dias {
		if d.DiaSemana < 0 || d.DiaSemana > 6 {
			return errInvalidWeekday
		}
		if seen[d.DiaSemana] {
			return errDuplicateWeekday
		}
		seen[d.DiaSemana] = true
		if _, err := domain.ClockRange(ref, d.HoraInicio, d.HoraFin); err != nil {
			return err
		}
	}
	return nil
}

// ======================================================
// GET /catalog/estilistas/:id/horarios
// ======================================================

func (h *HorarioHandler) Get(c *gin.Context) {
	est, ok := h.loadEstilista(c, c.Param("id"))
	if !ok {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	var horarios []models.Horario
	if err := gdb.
		Where("estilista_id = ?", est.ID).
		Order("dia_semana ASC").
		Find(&horarios).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	httpresp.List(c, horarios)
}

// ======================================================
// PUT /catalog/estilistas/:id/horarios
// ======================================================

func (h *HorarioHandler) Replace(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	est, ok := h.loadEstilista(c, c.Param("id"))
	if !ok {
		return
	}

	var req ReplaceHorariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if err := validateWeek(req.Dias); err != nil {
		h.fail(c, err)
		return
	}

	rows := make([]models.Horario, 0, len(req.Dias))
	for _, d := range req.Dias {
		rows = append(rows, models.Horario{
			EstilistaID: est.ID,
			DiaSemana:   d.DiaSemana,
			HoraInicio:  d.HoraInicio,
			HoraFin:     d.HoraFin,
		})
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("estilista_id = ?", est.ID).Delete(&models.Horario{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, est.SedeID, "horarios_replaced", "estilista", est.ID, req.Dias)
	httpresp.List(c, rows)
}
