package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var errEstilistaNotFound = httperr.ErrNotFound("estilista_not_found", "El estilista no existe.")

type EstilistaHandler struct {
	Env
}

func NewEstilistaHandler(env Env) *EstilistaHandler {
	return &EstilistaHandler{Env: env}
}

// --------- Requests ---------

type CreateEstilistaRequest struct {
	SedeID         string   `json:"sede_id"`
	Nombre         string   `json:"nombre" binding:"required,min=2,max=100"`
	Especialidades []string `json:"especialidades"`
}

type UpdateEstilistaRequest struct {
	Nombre         *string   `json:"nombre,omitempty" binding:"omitempty,min=2,max=100"`
	Especialidades *[]string `json:"especialidades,omitempty"`
	Activo         *bool     `json:"activo,omitempty"`
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// loadEstilista fetches an estilista the caller may operate on.
func (e Env) loadEstilista(c *gin.Context, id string) (*models.Estilista, bool) {
	gdb, cancel := e.conn(c)
	defer cancel()

	var est models.Estilista
	if err := gdb.First(&est, "id = ?", id).Error; err != nil {
		e.fail(c, repository.MapErr(err, errEstilistaNotFound))
		return nil, false
	}
	if !e.authorizeSede(c, est.SedeID) {
		return nil, false
	}
	return &est, true
}

// --------- Handlers ---------

func (h *EstilistaHandler) List(c *gin.Context) {
	f, ok := h.scope(c, c.Query("sede_id"))
	if !ok {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	q := repository.ApplyScope(gdb.Model(&models.Estilista{}), f, "sede_id")

	switch c.Query("activo") {
	case "true":
		q = q.Where("activo = ?", true)
	case "false":
		q = q.Where("activo = ?", false)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		q = q.Where("LOWER(nombre) LIKE ?", "%"+query+"%")
	}

	var out []models.Estilista
	if err := q.Order("nombre ASC").Find(&out).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	httpresp.List(c, out)
}

func (h *EstilistaHandler) Get(c *gin.Context) {
	est, ok := h.loadEstilista(c, c.Param("id"))
	if !ok {
		return
	}
	httpresp.OK(c, est)
}

func (h *EstilistaHandler) Create(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	var req CreateEstilistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sedeID, ok := h.targetSede(c, req.SedeID)
	if !ok {
		return
	}

	est := models.Estilista{
		SedeID:         sedeID,
		Nombre:         strings.TrimSpace(req.Nombre),
		Especialidades: cleanList(req.Especialidades),
		Activo:         true,
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Omit("Sede").Create(&est).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, sedeID, "estilista_created", "estilista", est.ID, nil)
	httpresp.Created(c, est)
}

func (h *EstilistaHandler) Update(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	est, ok := h.loadEstilista(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateEstilistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Nombre != nil {
		est.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Especialidades != nil {
		est.Especialidades = cleanList(*req.Especialidades)
	}
	if req.Activo != nil {
		est.Activo = *req.Activo
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Omit("Sede").Save(est).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, est.SedeID, "estilista_updated", "estilista", est.ID, req)
	httpresp.OK(c, est)
}
