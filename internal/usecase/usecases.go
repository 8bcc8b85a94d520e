// Package usecase aggregates the per-camera runtimes handed to the HTTP
// layer.
package usecase

import (
	"github.com/apocaliss92/reolink-osd-sync/internal/cache"
	"github.com/apocaliss92/reolink-osd-sync/internal/detection"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/repository/settings"
	"github.com/apocaliss92/reolink-osd-sync/internal/telemetry"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/devices"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/overlay"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/sessions"
)

// CameraRuntime bundles everything owned per camera.
type CameraRuntime struct {
	Camera   entity.Camera
	Sessions *sessions.UseCase
	Devices  *devices.UseCase
	Settings *settings.Repository
	Engine   *overlay.Engine
}

// Usecases is the dependency set the controllers consume.
type Usecases struct {
	Cameras   map[string]*CameraRuntime
	Registry  *overlay.Registry
	Hub       *detection.Hub
	Telemetry *telemetry.Registry
	Cache     *cache.Cache
}

// Camera returns one runtime by id.
func (u Usecases) Camera(id string) (*CameraRuntime, bool) {
	rt, ok := u.Cameras[id]

	return rt, ok
}
