package v1

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/devices"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/overlay"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/sessions"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr validator.ValidationErrors
		notValidErr  dto.NotValidError
		transportErr reolink.TransportError
		authErr      sessions.AuthError
		stateErr     devices.DeviceStateError
		netErr       net.Error
	)

	switch {
	case errors.Is(err, overlay.ErrCameraNotRegistered):
		msg := err.Error()
		c.AbortWithStatusJSON(http.StatusNotFound, response{Error: msg, Message: msg})
	case errors.As(err, &notValidErr):
		msg := notValidErr.Cam.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &validatorErr):
		msg := validatorErr.Error()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &stateErr):
		msg := stateErr.Cam.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response{Error: msg, Message: msg})
	case errors.As(err, &authErr):
		msg := authErr.Cam.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadGateway, response{Error: msg, Message: msg})
	case errors.As(err, &transportErr):
		msg := transportErr.Cam.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, response{Error: msg, Message: msg})
	case errors.As(err, &netErr):
		msg := netErr.Error()
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, response{Error: msg, Message: msg})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: "general error"})
	}
}

func notFoundCamera(c *gin.Context, id string) {
	msg := "camera " + id + " not found"
	c.AbortWithStatusJSON(http.StatusNotFound, response{Error: msg, Message: msg})
}
