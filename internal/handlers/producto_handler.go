package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	errProductoNotFound = httperr.ErrNotFound("producto_not_found", "El producto no existe.")
	errInvalidStock     = httperr.ErrValidation("invalid_stock", "El stock no puede ser negativo.")
	errImageMissing     = httperr.ErrValidation("missing_image", "Adjunte el archivo en el campo imagen.")
	errImageTooLarge    = httperr.ErrValidation("image_too_large", "La imagen supera el tamaño permitido.")
	errImageInvalid     = httperr.ErrValidation("invalid_image", "Formato de imagen no soportado.")
	errStorageDisabled  = httperr.ErrConfiguration("storage_disabled", "El almacenamiento de archivos no está configurado.")
)

type ProductoHandler struct {
	Env
	uploader storage.Uploader
}

func NewProductoHandler(env Env, uploader storage.Uploader) *ProductoHandler {
	return &ProductoHandler{Env: env, uploader: uploader}
}

// ======================================================
// DTOs
// ======================================================

type CreateProductoRequest struct {
	SedeID      string          `json:"sede_id"`
	Nombre      string          `json:"nombre" binding:"required,min=2,max=100"`
	Descripcion string          `json:"descripcion" binding:"max=255"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}

type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre,omitempty" binding:"omitempty,min=2,max=100"`
	Descripcion *string          `json:"descripcion,omitempty" binding:"omitempty,max=255"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Activo      *bool            `json:"activo,omitempty"`
}

func (h *ProductoHandler) load(c *gin.Context) (*models.Producto, bool) {
	gdb, cancel := h.conn(c)
	defer cancel()

	var p models.Producto
	if err := gdb.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		h.fail(c, repository.MapErr(err, errProductoNotFound))
		return nil, false
	}
	if !h.authorizeSede(c, p.SedeID) {
		return nil, false
	}
	return &p, true
}

// ======================================================
// Handlers
// ======================================================

func (h *ProductoHandler) List(c *gin.Context) {
	f, ok := h.scope(c, c.Query("sede_id"))
	if !ok {
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()

	q := repository.ApplyScope(gdb.Model(&models.Producto{}), f, "sede_id")
	if c.Query("activo") == "true" {
		q = q.Where("activo = ?", true)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		q = q.Where("LOWER(nombre) LIKE ?", "%"+query+"%")
	}

	var out []models.Producto
	if err := q.Order("nombre ASC").Find(&out).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	httpresp.List(c, out)
}

func (h *ProductoHandler) Create(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	var req CreateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if req.Precio.IsNegative() {
		h.fail(c, errInvalidPrice)
		return
	}
	if req.Stock < 0 {
		h.fail(c, errInvalidStock)
		return
	}

	sedeID, ok := h.targetSede(c, req.SedeID)
	if !ok {
		return
	}

	p := models.Producto{
		SedeID:      sedeID,
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
		Precio:      req.Precio,
		Stock:       req.Stock,
		Activo:      true,
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Create(&p).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, sedeID, "producto_created", "producto", p.ID, nil)
	httpresp.Created(c, p)
}

func (h *ProductoHandler) Update(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	p, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Nombre != nil {
		p.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			h.fail(c, errInvalidPrice)
			return
		}
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			h.fail(c, errInvalidStock)
			return
		}
		p.Stock = *req.Stock
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Save(p).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	h.record(c, p.SedeID, "producto_updated", "producto", p.ID, req)
	httpresp.OK(c, p)
}

// UploadImage converts the multipart "imagen" file to webp and stores it.
func (h *ProductoHandler) UploadImage(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	p, ok := h.load(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		h.fail(c, errImageMissing)
		return
	}
	if fh.Size > media.MaxFileSize {
		h.fail(c, errImageTooLarge)
		return
	}

	file, err := fh.Open()
	if err != nil {
		h.fail(c, errImageInvalid)
		return
	}
	defer file.Close()

	body, err := media.ToWebP(file)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		h.fail(c, errImageTooLarge)
		return
	case err != nil:
		h.fail(c, errImageInvalid)
		return
	}

	key := storage.ProductImageKey(p.SedeID, p.ID)
	if err := h.uploader.Put(c.Request.Context(), key, "image/webp", body); err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			h.fail(c, errStorageDisabled)
			return
		}
		h.fail(c, err)
		return
	}

	gdb, cancel := h.conn(c)
	defer cancel()
	if err := gdb.Model(p).Update("imagen_key", key).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}
	p.ImagenKey = key

	h.record(c, p.SedeID, "producto_image_uploaded", "producto", p.ID, gin.H{"key": key})
	httpresp.OK(c, p)
}
