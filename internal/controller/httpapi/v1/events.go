package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

type eventRoutes struct {
	t        usecase.Usecases
	l        logger.Interface
	upgrader *websocket.Upgrader
}

// NewEventRoutes wires the websocket ingest endpoint detectors push object
// detection batches to.
func NewEventRoutes(handler *gin.RouterGroup, t usecase.Usecases, l logger.Interface) {
	r := &eventRoutes{
		t: t,
		l: l,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
	}

	handler.GET("/events/ws", r.ingest)
	handler.POST("/events", r.publish)
}

// ingest holds one detector connection open and feeds each message into the
// hub.
func (r *eventRoutes) ingest(c *gin.Context) {
	conn, err := r.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		r.l.Error(err, "http - v1 - events upgrade")

		return
	}

	defer conn.Close()

	for {
		var event dto.DetectionEvent
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				r.l.Warn("events: read: %s", err)
			}

			return
		}

		r.publishEvent(event)
	}
}

// publish is the one-shot HTTP alternative to the websocket feed.
func (r *eventRoutes) publish(c *gin.Context) {
	var event dto.DetectionEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		ErrorResponse(c, ErrValidationCamera.Wrap("publish", "ShouldBindJSON", err))

		return
	}

	r.publishEvent(event)

	c.Status(http.StatusAccepted)
}

func (r *eventRoutes) publishEvent(event dto.DetectionEvent) {
	batch := make([]entity.Detection, 0, len(event.Detections))
	for _, d := range event.Detections {
		batch = append(batch, entity.Detection{ClassName: d.ClassName, Label: d.Label})
	}

	r.t.Hub.Publish(event.CameraID, batch)
}
