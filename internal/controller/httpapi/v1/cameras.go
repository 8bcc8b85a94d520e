package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/overlay"
	"github.com/apocaliss92/reolink-osd-sync/pkg/camerrors"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

var ErrValidationCamera = dto.NotValidError{Cam: camerrors.CreateCameraError("CameraAPI")}

type cameraRoutes struct {
	t usecase.Usecases
	l logger.Interface
}

func NewCameraRoutes(handler *gin.RouterGroup, t usecase.Usecases, l logger.Interface) {
	r := &cameraRoutes{t, l}

	if binding.Validator != nil {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("overlayposition", dto.ValidateOverlayPosition)
		}
	}

	h := handler.Group("/cameras")
	{
		h.GET("", r.get)
		h.GET(":id/overlay", r.getOverlay)
		h.PUT(":id/overlay", r.putOverlay)
		h.POST(":id/overlay/duplicate", r.duplicate)
		h.GET(":id/name", r.getName)
		h.PUT(":id/name", r.putName)
	}
}

func (r *cameraRoutes) get(c *gin.Context) {
	items := make([]dto.CameraSummary, 0, len(r.t.Cameras))

	for _, id := range r.t.Registry.CameraIDs() {
		rt, ok := r.t.Camera(id)
		if !ok {
			continue
		}

		items = append(items, dto.CameraSummary{
			ID:      rt.Camera.ID,
			Name:    rt.Camera.Name,
			Host:    rt.Camera.Host,
			Channel: rt.Camera.Channel,
		})
	}

	c.JSON(http.StatusOK, items)
}

func (r *cameraRoutes) getOverlay(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	src := overlay.ReadOverlaySource(rt.Settings, overlay.OverlayID)

	c.JSON(http.StatusOK, dto.OverlaySettings{
		Type:     string(src.Type),
		Device:   src.DeviceRef,
		Prefix:   src.Prefix,
		Text:     src.Text,
		Position: src.Position,
	})
}

func (r *cameraRoutes) putOverlay(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	var settings dto.OverlaySettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		ErrorResponse(c, ErrValidationCamera.Wrap("putOverlay", "ShouldBindJSON", err))

		return
	}

	rt.Settings.PutValue(overlay.TypeKey(overlay.OverlayID), settings.Type)
	rt.Settings.PutValue(overlay.DeviceKey(overlay.OverlayID), settings.Device)
	rt.Settings.PutValue(overlay.PrefixKey(overlay.OverlayID), settings.Prefix)
	rt.Settings.PutValue(overlay.TextKey(overlay.OverlayID), settings.Text)
	rt.Settings.PutValue(overlay.PositionKey(overlay.OverlayID), settings.Position)

	if err := rt.Engine.SyncNow(c.Request.Context()); err != nil {
		r.l.Error(err, "http - v1 - putOverlay")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, settings)
}

func (r *cameraRoutes) duplicate(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	var req dto.DuplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, ErrValidationCamera.Wrap("duplicate", "ShouldBindJSON", err))

		return
	}

	if err := rt.Engine.DuplicateFrom(c.Request.Context(), req.FromCameraID); err != nil {
		r.l.Error(err, "http - v1 - duplicate")
		ErrorResponse(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *cameraRoutes) getName(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	name, err := rt.Devices.GetDeviceName(c.Request.Context())
	if err != nil {
		r.l.Error(err, "http - v1 - getName")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.DeviceName{Name: name})
}

func (r *cameraRoutes) putName(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	var req dto.DeviceName
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, ErrValidationCamera.Wrap("putName", "ShouldBindJSON", err))

		return
	}

	if err := rt.Devices.SetDeviceName(c.Request.Context(), req.Name); err != nil {
		r.l.Error(err, "http - v1 - putName")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, req)
}
