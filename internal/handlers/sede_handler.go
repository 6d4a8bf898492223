package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type SedeHandler struct {
	Env
}

func NewSedeHandler(env Env) *SedeHandler {
	return &SedeHandler{Env: env}
}

type UpdateSedeRequest struct {
	Nombre      *string `json:"nombre,omitempty" binding:"omitempty,min=2,max=100"`
	Direccion   *string `json:"direccion,omitempty" binding:"omitempty,max=255"`
	Telefono    *string `json:"telefono,omitempty" binding:"omitempty,max=20"`
	ZonaHoraria *string `json:"zona_horaria,omitempty"`
}

func (h *SedeHandler) List(c *gin.Context) {
	f, ok := h.scope(c, c.Query("sede_id"))
	if !ok {
		return
	}

	sedes, err := h.Sedes.ListSedes(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.List(c, sedes)
}

func (h *SedeHandler) Get(c *gin.Context) {
	sede, err := h.Sedes.GetSede(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !h.authorizeSede(c, sede.ID) {
		return
	}
	httpresp.OK(c, sede)
}

func (h *SedeHandler) Update(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	sede, err := h.Sedes.GetSede(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !h.authorizeSede(c, sede.ID) {
		return
	}

	var req UpdateSedeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Nombre != nil {
		sede.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Direccion != nil {
		sede.Direccion = strings.TrimSpace(*req.Direccion)
	}
	if req.Telefono != nil {
		sede.Telefono = strings.TrimSpace(*req.Telefono)
	}
	if req.ZonaHoraria != nil {
		if !timezone.IsValid(*req.ZonaHoraria) {
			httperr.BadRequest(c, "invalid_timezone", "Zona horaria inválida.")
			return
		}
		sede.ZonaHoraria = *req.ZonaHoraria
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Save(sede).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, sede.ID, "sede_updated", "sede", sede.ID, req)
	httpresp.OK(c, sede)
}
