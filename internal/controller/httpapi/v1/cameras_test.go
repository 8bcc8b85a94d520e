package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/apocaliss92/reolink-osd-sync/internal/cache"
	"github.com/apocaliss92/reolink-osd-sync/internal/detection"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	dto "github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/mocks"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/internal/repository/settings"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/overlay"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

type apiTest struct {
	engine  *gin.Engine
	t       usecase.Usecases
	devices map[string]*mocks.MockDeviceOps
}

func initCamerasTest(t *testing.T, cameraIDs ...string) apiTest {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCtl := gomock.NewController(t)

	uses := usecase.Usecases{
		Cameras:  make(map[string]*usecase.CameraRuntime),
		Registry: overlay.NewRegistry(),
		Hub:      detection.NewHub(),
		Cache:    cache.New(30*time.Second, 30*time.Second),
	}

	deviceMocks := make(map[string]*mocks.MockDeviceOps)

	for _, id := range cameraIDs {
		device := mocks.NewMockDeviceOps(mockCtl)
		store := settings.New()
		eng := overlay.NewEngine(id, device, store, nil, uses.Hub, uses.Registry, time.Minute, logger.New("error"))
		uses.Registry.Add(eng)

		uses.Cameras[id] = &usecase.CameraRuntime{
			Camera:   entity.Camera{ID: id, Name: "Camera " + id, Host: "192.168.1.10"},
			Settings: store,
			Engine:   eng,
		}

		deviceMocks[id] = device
	}

	engine := gin.New()
	handler := engine.Group("/api/v1")
	NewCameraRoutes(handler, uses, logger.New("error"))

	return apiTest{engine: engine, t: uses, devices: deviceMocks}
}

func TestGetCameras(t *testing.T) {
	t.Parallel()

	tt := initCamerasTest(t, "frontdoor", "backyard")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cameras", http.NoBody)
	w := httptest.NewRecorder()

	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []dto.CameraSummary

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
}

func TestOverlayRoundTrip(t *testing.T) {
	t.Parallel()

	tt := initCamerasTest(t, "frontdoor")

	// PUT with a static text source: the engine applies without touching
	// the device.
	body := `{"type":"text","text":"Front Door","position":"Upper Left"}`

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cameras/frontdoor/overlay", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cameras/frontdoor/overlay", http.NoBody)
	w = httptest.NewRecorder()
	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got dto.OverlaySettings

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "text", got.Type)
	require.Equal(t, "Front Door", got.Text)
	require.Equal(t, "Upper Left", got.Position)
}

func TestPutOverlayRejectsUnknownPosition(t *testing.T) {
	t.Parallel()

	tt := initCamerasTest(t, "frontdoor")

	body := `{"type":"text","text":"x","position":"Middle Of Nowhere"}`

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cameras/frontdoor/overlay", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutOverlayUnknownCamera(t *testing.T) {
	t.Parallel()

	tt := initCamerasTest(t, "frontdoor")

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cameras/ghost/overlay", bytes.NewBufferString(`{"type":"text"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateOverlayEndpoint(t *testing.T) {
	t.Parallel()

	tt := initCamerasTest(t, "frontdoor", "backyard")

	source := tt.t.Cameras["backyard"]
	source.Settings.PutValue(overlay.TypeKey(overlay.OverlayID), "text")
	source.Settings.PutValue(overlay.TextKey(overlay.OverlayID), "Backyard")

	osd := &reolink.OsdValue{}
	osd.Osd.OsdChannel.Name = "Backyard"
	osd.Osd.OsdChannel.Pos = "Bottom Center"

	tt.devices["backyard"].EXPECT().GetOsd(gomock.Any()).Return(osd, nil)
	tt.devices["frontdoor"].EXPECT().GetOsd(gomock.Any()).Return(&reolink.OsdValue{}, nil)
	tt.devices["frontdoor"].EXPECT().SetOsd(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cameras/frontdoor/overlay/duplicate", bytes.NewBufferString(`{"fromCameraId":"backyard"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	target := tt.t.Cameras["frontdoor"]
	require.Equal(t, "Backyard", target.Settings.GetValue(overlay.TextKey(overlay.OverlayID)))
}

func TestDuplicateOverlayUnknownSource(t *testing.T) {
	t.Parallel()

	tt := initCamerasTest(t, "frontdoor")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cameras/frontdoor/overlay/duplicate", bytes.NewBufferString(`{"fromCameraId":"ghost"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	tt.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
