package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apocaliss92/reolink-osd-sync/internal/cache"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/devices"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

type videoClipRoutes struct {
	t usecase.Usecases
	l logger.Interface
}

func NewVideoClipRoutes(handler *gin.RouterGroup, t usecase.Usecases, l logger.Interface) {
	r := &videoClipRoutes{t, l}

	h := handler.Group("/cameras")
	{
		h.GET(":id/clips", r.search)
		h.GET(":id/clips/urls", r.clipURLs)
		h.GET(":id/snapshot", r.snapshot)
		h.GET(":id/battery", r.battery)
		h.GET(":id/whiteled", r.whiteLed)
	}
}

type clipQuery struct {
	Start  time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End    time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	Stream string    `form:"stream" binding:"omitempty,oneof=main sub"`
}

func (r *videoClipRoutes) search(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	var q clipQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, ErrValidationCamera.Wrap("search", "ShouldBindQuery", err))

		return
	}

	if q.Stream == "" {
		q.Stream = devices.StreamMain
	}

	key := cache.ClipSearchKey(rt.Camera.ID, q.Start, q.End, q.Stream)
	if cached, ok := r.t.Cache.Get(key); ok {
		c.JSON(http.StatusOK, cached)

		return
	}

	files, err := rt.Devices.SearchVideoClips(c.Request.Context(), q.Start, q.End, q.Stream)
	if err != nil {
		r.l.Error(err, "http - v1 - search")
		ErrorResponse(c, err)

		return
	}

	clips := make([]dto.VideoClip, 0, len(files))
	for _, f := range files {
		clips = append(clips, dto.VideoClip{
			Name:      f.Name,
			StartTime: f.StartTime.Time(q.Start.Location()),
			EndTime:   f.EndTime.Time(q.Start.Location()),
			Size:      f.Size,
			Type:      q.Stream,
		})
	}

	r.t.Cache.SetClips(key, clips)

	c.JSON(http.StatusOK, clips)
}

func (r *videoClipRoutes) clipURLs(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	clipPath := c.Query("path")
	if clipPath == "" {
		ErrorResponse(c, ErrValidationCamera.Wrap("clipURLs", "missing path", nil))

		return
	}

	urls, err := rt.Devices.VideoClipURLs(c.Request.Context(), clipPath)
	if err != nil {
		r.l.Error(err, "http - v1 - clipURLs")
		ErrorResponse(c, err)

		return
	}

	// redirect=download|playback sends the caller straight to the camera,
	// for players that follow a single URL.
	switch c.Query("redirect") {
	case "download":
		c.Redirect(http.StatusFound, urls.DownloadURL)
	case "playback":
		c.Redirect(http.StatusFound, urls.PlaybackURL)
	case "":
		c.JSON(http.StatusOK, dto.ClipURLs{Download: urls.DownloadURL, Playback: urls.PlaybackURL})
	default:
		ErrorResponse(c, ErrValidationCamera.Wrap("clipURLs", "unknown redirect target", nil))
	}
}

func (r *videoClipRoutes) snapshot(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	data, err := rt.Devices.Snapshot(c.Request.Context())
	if err != nil {
		r.l.Error(err, "http - v1 - snapshot")
		ErrorResponse(c, err)

		return
	}

	c.Data(http.StatusOK, "image/jpeg", data)
}

func (r *videoClipRoutes) battery(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	key := cache.BatteryKey(rt.Camera.ID)
	if cached, ok := r.t.Cache.Get(key); ok {
		c.JSON(http.StatusOK, cached)

		return
	}

	status, err := rt.Devices.GetBatteryStatus(c.Request.Context())
	if err != nil {
		r.l.Error(err, "http - v1 - battery")
		ErrorResponse(c, err)

		return
	}

	r.t.Cache.SetBattery(key, status)

	c.JSON(http.StatusOK, status)
}

func (r *videoClipRoutes) whiteLed(c *gin.Context) {
	rt, ok := r.t.Camera(c.Param("id"))
	if !ok {
		notFoundCamera(c, c.Param("id"))

		return
	}

	raw, err := rt.Devices.GetWhiteLed(c.Request.Context())
	if err != nil {
		r.l.Error(err, "http - v1 - whiteLed")
		ErrorResponse(c, err)

		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
