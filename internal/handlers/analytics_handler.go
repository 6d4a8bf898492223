package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAnalytics "github.com/BruksfildServices01/salon-scheduler/internal/usecase/analytics"
)

type AnalyticsHandler struct {
	dashboard *ucAnalytics.Dashboard
	log       *zap.Logger
}

func NewAnalyticsHandler(dashboard *ucAnalytics.Dashboard, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard, log: log}
}

func dashboardInput(c *gin.Context) ucAnalytics.DashboardInput {
	return ucAnalytics.DashboardInput{
		Period:    c.Query("period"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		SedeID:    c.Query("sede_id"),
	}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ov, err := h.dashboard.Execute(c.Request.Context(), middleware.Identity(c), dashboardInput(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ov)
}

func (h *AnalyticsHandler) Export(c *gin.Context) {
	ov, err := h.dashboard.Execute(c.Request.Context(), middleware.Identity(c), dashboardInput(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	file, err := ucAnalytics.ExportXLSX(ov)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	name := fmt.Sprintf("kpis_%s_%s.xlsx", ov.Period.Start, ov.Period.End)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file)
}
