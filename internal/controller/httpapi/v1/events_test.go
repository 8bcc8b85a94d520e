package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/apocaliss92/reolink-osd-sync/internal/cache"
	"github.com/apocaliss92/reolink-osd-sync/internal/detection"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

func TestPublishDetectionEvent(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	uses := usecase.Usecases{
		Cameras:  map[string]*usecase.CameraRuntime{},
		Hub:      detection.NewHub(),
		Cache:    cache.New(30*time.Second, 30*time.Second),
	}

	var received [][]entity.Detection

	cancel := uses.Hub.Subscribe("frontdoor", func(batch []entity.Detection) { received = append(received, batch) })
	defer cancel()

	engine := gin.New()
	handler := engine.Group("/api/v1")
	NewEventRoutes(handler, uses, logger.New("error"))

	body := `{"cameraId":"frontdoor","detections":[{"className":"face","label":"alice"},{"className":"person"}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	require.Len(t, received, 1)
	require.Len(t, received[0], 2)
	require.Equal(t, "alice", received[0][0].Label)
}

func TestPublishDetectionEventRejectsMalformed(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	uses := usecase.Usecases{Hub: detection.NewHub()}

	engine := gin.New()
	handler := engine.Group("/api/v1")
	NewEventRoutes(handler, uses, logger.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewBufferString(`{"detections":[]}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
