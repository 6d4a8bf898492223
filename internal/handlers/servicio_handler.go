package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	errServicioNotFound  = httperr.ErrNotFound("servicio_not_found", "El servicio no existe.")
	errServicioDuplicado = httperr.ErrConflict("servicio_duplicado", "Ya existe un servicio con ese nombre en la sede.")
	errInvalidPrice      = httperr.ErrValidation("invalid_price", "El precio no puede ser negativo.")
)

type ServicioHandler struct {
	Env
}

func NewServicioHandler(env Env) *ServicioHandler {
	return &ServicioHandler{Env: env}
}

// --------- Requests ---------

type CreateServicioRequest struct {
	SedeID          string          `json:"sede_id"`
	Nombre          string          `json:"nombre" binding:"required,min=2,max=100"`
	Descripcion     string          `json:"descripcion" binding:"max=255"`
	DuracionMinutos int             `json:"duracion_minutos" binding:"required,min=5,max=720"`
	Precio          decimal.Decimal `json:"precio"`
	Categoria       string          `json:"categoria" binding:"max=50"`
}

type UpdateServicioRequest struct {
	Nombre          *string          `json:"nombre,omitempty" binding:"omitempty,min=2,max=100"`
	Descripcion     *string          `json:"descripcion,omitempty" binding:"omitempty,max=255"`
	DuracionMinutos *int             `json:"duracion_minutos,omitempty" binding:"omitempty,min=5,max=720"`
	Precio          *decimal.Decimal `json:"precio,omitempty"`
	Categoria       *string          `json:"categoria,omitempty" binding:"omitempty,max=50"`
	Activo          *bool            `json:"activo,omitempty"`
}

func saveServicioErr(err error) error {
	mapped := repository.MapErr(err, errServicioNotFound)
	if httperr.IsBusiness(mapped, "duplicate") {
		return errServicioDuplicado
	}
	return mapped
}

// --------- Handlers ---------

func (h *ServicioHandler) List(c *gin.Context) {
	f, ok := h.scope(c, c.Query("sede_id"))
	if !ok {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	q := repository.ApplyScope(gdb.Model(&models.Servicio{}), f, "sede_id")

	if categoria := strings.ToLower(strings.TrimSpace(c.Query("categoria"))); categoria != "" {
		q = q.Where("LOWER(categoria) = ?", categoria)
	}
	switch c.Query("activo") {
	case "true":
		q = q.Where("activo = ?", true)
	case "false":
		q = q.Where("activo = ?", false)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ?", like, like)
	}

	var out []models.Servicio
	if err := q.Order("nombre ASC").Find(&out).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	httpresp.List(c, out)
}

func (h *ServicioHandler) Create(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	var req CreateServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if req.Precio.IsNegative() {
		h.fail(c, errInvalidPrice)
		return
	}

	sedeID, ok := h.targetSede(c, req.SedeID)
	if !ok {
		return
	}

	srv := models.Servicio{
		SedeID:          sedeID,
		Nombre:          strings.TrimSpace(req.Nombre),
		Descripcion:     strings.TrimSpace(req.Descripcion),
		DuracionMinutos: req.DuracionMinutos,
		Precio:          req.Precio,
		Categoria:       strings.ToLower(strings.TrimSpace(req.Categoria)),
		Activo:          true,
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Create(&srv).Error; err != nil {
		h.fail(c, saveServicioErr(err))
		return
	}

	h.record(c, sedeID, "servicio_created", "servicio", srv.ID, nil)
	httpresp.Created(c, srv)
}

func (h *ServicioHandler) Update(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	var srv models.Servicio
	if err := gdb.First(&srv, "id = ?", c.Param("id")).Error; err != nil {
		h.fail(c, repository.MapErr(err, errServicioNotFound))
		return
	}
	if !h.authorizeSede(c, srv.SedeID) {
		return
	}

	var req UpdateServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Nombre != nil {
		srv.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		srv.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.DuracionMinutos != nil {
		srv.DuracionMinutos = *req.DuracionMinutos
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			h.fail(c, errInvalidPrice)
			return
		}
		srv.Precio = *req.Precio
	}
	if req.Categoria != nil {
		srv.Categoria = strings.ToLower(strings.TrimSpace(*req.Categoria))
	}
	if req.Activo != nil {
		srv.Activo = *req.Activo
	}

	if err := gdb.Save(&srv).Error; err != nil {
		h.fail(c, saveServicioErr(err))
		return
	}

	h.record(c, srv.SedeID, "servicio_updated", "servicio", srv.ID, req)
	httpresp.OK(c, srv)
}
