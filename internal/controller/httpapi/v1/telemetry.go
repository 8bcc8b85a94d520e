package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

type telemetryRoutes struct {
	t usecase.Usecases
	l logger.Interface
}

// NewTelemetryRoutes wires the ingest endpoint external sensor integrations
// push readings to. Device-backed overlays resolve against the latest
// reported value.
func NewTelemetryRoutes(handler *gin.RouterGroup, t usecase.Usecases, l logger.Interface) {
	r := &telemetryRoutes{t, l}

	handler.POST("/telemetry", r.report)
	handler.GET("/telemetry", r.list)
}

func (r *telemetryRoutes) report(c *gin.Context) {
	var req dto.TelemetryReport
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, ErrValidationCamera.Wrap("report", "ShouldBindJSON", err))

		return
	}

	switch {
	case req.Temperature != nil:
		r.t.Telemetry.ReportTemperature(req.DeviceRef, *req.Temperature, req.Unit)
	case req.Humidity != nil:
		r.t.Telemetry.ReportHumidity(req.DeviceRef, *req.Humidity)
	default:
		ErrorResponse(c, ErrValidationCamera.Wrap("report", "empty reading", nil))

		return
	}

	c.Status(http.StatusAccepted)
}

func (r *telemetryRoutes) list(c *gin.Context) {
	c.JSON(http.StatusOK, r.t.Telemetry.DeviceRefs())
}
