package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	Env
}

func NewAuditLogsHandler(env Env) *AuditLogsHandler {
	return &AuditLogsHandler{Env: env}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if !h.requireRole(c, adminRoles) {
		return
	}

	f, ok := h.scope(c, c.Query("sede_id"))
	if !ok {
		return
	}
	page, limit, offset := httpresp.PageParams(c)

	gdb, cancel := h.conn(c)
	defer cancel()

	// --------------------------------------------------
	// Query base (siempre acotada al alcance del rol)
	// --------------------------------------------------

	q := repository.ApplyScope(gdb.Model(&models.AuditLog{}), f, "sede_id")

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q = q.Where("created_at >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		h.fail(c, repository.MapErr(err, nil))
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
