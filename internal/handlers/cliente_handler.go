package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

var (
	errClienteNotFound = httperr.ErrNotFound("cliente_not_found", "El cliente no existe.")
	errInvalidEmail    = httperr.ErrValidation("invalid_email", "Correo inválido.")
	errInvalidPhone    = httperr.ErrValidation("invalid_phone", "Teléfono inválido.")
)

type ClienteHandler struct {
	Env
}

func NewClienteHandler(env Env) *ClienteHandler {
	return &ClienteHandler{Env: env}
}

type ClienteRequest struct {
	SedeID   string `json:"sede_id"`
	Nombre   string `json:"nombre" binding:"required,min=2,max=100"`
	Correo   string `json:"correo" binding:"max=100"`
	Telefono string `json:"telefono" binding:"max=20"`
}

type UpdateClienteRequest struct {
	Nombre   *string `json:"nombre,omitempty" binding:"omitempty,min=2,max=100"`
	Correo   *string `json:"correo,omitempty" binding:"omitempty,max=100"`
	Telefono *string `json:"telefono,omitempty" binding:"omitempty,max=20"`
}

func normalizeContact(correo, telefono string) (string, string, error) {
	email, ok := validators.NormalizeEmail(correo)
	if !ok {
		return "", "", errInvalidEmail
	}
	phone, ok := validators.NormalizePhone(telefono)
	if !ok {
		return "", "", errInvalidPhone
	}
	return email, phone, nil
}

func (h *ClienteHandler) List(c *gin.Context) {
	f, ok := h.scope(c, c.Query("sede_id"))
	if !ok {
		return
	}
	page, limit, offset := httpresp.PageParams(c)

	gdb, cancel := h.conn(c)
	defer cancel()

	q := repository.ApplyScope(gdb.Model(&models.Cliente{}), f, "sede_id")
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(correo) LIKE ? OR telefono LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	var out []models.Cliente
	if err := q.Order("nombre ASC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	httpresp.Page(c, out, page, limit, total)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	gdb, cancel := h.conn(c)
	defer cancel()

	var cli models.Cliente
	if err := gdb.First(&cli, "id = ?", c.Param("id")).Error; err != nil {
		h.fail(c, repository.MapErr(err, errClienteNotFound))
		return
	}
	if !h.authorizeSede(c, cli.SedeID) {
		return
	}
	httpresp.OK(c, cli)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	if !h.requireRole(c, frontDeskRoles) {
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email, phone, err := normalizeContact(req.Correo, req.Telefono)
	if err != nil {
		h.fail(c, err)
		return
	}

	sedeID, ok := h.targetSede(c, req.SedeID)
	if !ok {
		return
	}

	cli := models.Cliente{
		SedeID:   sedeID,
		Nombre:   strings.TrimSpace(req.Nombre),
		Correo:   email,
		Telefono: phone,
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Create(&cli).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, sedeID, "cliente_created", "cliente", cli.ID, nil)
	httpresp.Created(c, cli)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	if !h.requireRole(c, frontDeskRoles) {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	var cli models.Cliente
	if err := gdb.First(&cli, "id = ?", c.Param("id")).Error; err != nil {
		h.fail(c, repository.MapErr(err, errClienteNotFound))
		return
	}
	if !h.authorizeSede(c, cli.SedeID) {
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	correo, telefono := cli.Correo, cli.Telefono
	if req.Correo != nil {
		correo = *req.Correo
	}
	if req.Telefono != nil {
		telefono = *req.Telefono
	}
	email, phone, err := normalizeContact(correo, telefono)
	if err != nil {
		h.fail(c, err)
		return
	}
	cli.Correo, cli.Telefono = email, phone
	if req.Nombre != nil {
		cli.Nombre = strings.TrimSpace(*req.Nombre)
	}

	if err := gdb.Save(&cli).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, cli.SedeID, "cliente_updated", "cliente", cli.ID, nil)
	httpresp.OK(c, cli)
}
