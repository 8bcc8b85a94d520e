package overlay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

var ErrCameraNotRegistered = errors.New("source camera not registered")

// Engine owns one camera's sync loop. Each tick re-reads the overlay
// configuration, resolves the display text and performs the OSD
// read-modify-write, then refreshes the cached device name. Ticks never
// overlap; the loop runs them one at a time on its own goroutine.
type Engine struct {
	cameraID  string
	overlayID string
	device    DeviceOps
	settings  SettingsStore
	telemetry TelemetrySource
	tracker   *Tracker
	registry  *Registry
	interval  time.Duration
	log       logger.Interface

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewEngine -.
func NewEngine(cameraID string, device DeviceOps, settings SettingsStore, telemetry TelemetrySource, detections DetectionSource, registry *Registry, interval time.Duration, log logger.Interface) *Engine {
	return &Engine{
		cameraID:  cameraID,
		overlayID: OverlayID,
		device:    device,
		settings:  settings,
		telemetry: telemetry,
		tracker:   NewTracker(detections, cameraID),
		registry:  registry,
		interval:  interval,
		log:       log,
		done:      make(chan struct{}),
	}
}

// CameraID -.
func (e *Engine) CameraID() string {
	return e.cameraID
}

// Start registers the engine and launches the sync loop. The first tick
// runs immediately.
func (e *Engine) Start() {
	e.startOnce.Do(func() {
		e.registry.Add(e)
		e.wg.Add(1)

		go e.run()
	})
}

// Stop halts the loop, releases the detection subscription and removes the
// engine from the registry. It blocks until an in-flight tick finishes.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
		e.wg.Wait()
		e.tracker.Stop()
		e.registry.Remove(e)
	})
}

func (e *Engine) run() {
	defer e.wg.Done()

	e.runTick()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			// Ticks missed while a slow tick ran are coalesced by the
			// ticker, not queued.
			e.runTick()
		}
	}
}

func (e *Engine) runTick() {
	ctx, cancel := context.WithTimeout(context.Background(), e.interval)
	defer cancel()

	e.tick(ctx)
}

func (e *Engine) tick(ctx context.Context) {
	src := ReadOverlaySource(e.settings, e.overlayID)
	e.syncTracker(src)

	overlaySyncTicksTotal.WithLabelValues(e.cameraID).Inc()

	if err := e.apply(ctx, src); err != nil {
		overlaySyncErrorsTotal.WithLabelValues(e.cameraID).Inc()
		e.log.Warn("overlay sync: camera %s: %s", e.cameraID, err)
	}

	if err := e.refreshFallbackText(ctx); err != nil {
		e.log.Debug("overlay sync: camera %s: name refresh: %s", e.cameraID, err)
	}
}

// SyncNow applies the current overlay configuration once, outside the
// timer. Used after a settings update so the change is visible without
// waiting for the next tick.
func (e *Engine) SyncNow(ctx context.Context) error {
	src := ReadOverlaySource(e.settings, e.overlayID)
	e.syncTracker(src)

	return e.apply(ctx, src)
}

// syncTracker keeps the detection subscription aligned with the configured
// type: open while face detection drives the overlay, closed otherwise.
func (e *Engine) syncTracker(src entity.OverlaySource) {
	if src.Type == entity.OverlayTypeFaceDetection {
		e.tracker.Start()

		return
	}

	e.tracker.Stop()
}

func (e *Engine) apply(ctx context.Context, src entity.OverlaySource) error {
	text, write := Resolve(src, e.resolveInput(src))
	if !write {
		return nil
	}

	return e.writeOverlay(ctx, text, src.Position)
}

// writeOverlay is the fetch-merge-write cycle. Every field of the fetched
// document is echoed back; only enable, position and name change. An empty
// text merges enable and position but leaves the current name alone.
func (e *Engine) writeOverlay(ctx context.Context, text, position string) error {
	osd, err := e.device.GetOsd(ctx)
	if err != nil {
		return err
	}

	osd.Osd.OsdChannel.Enable = 1

	if position != "" {
		osd.Osd.OsdChannel.Pos = position
	}

	if text != "" {
		osd.Osd.OsdChannel.Name = text
	}

	return e.device.SetOsd(ctx, osd)
}

// refreshFallbackText caches the device's self-reported name into the text
// field so switching the overlay to the static type surfaces the current
// name.
func (e *Engine) refreshFallbackText(ctx context.Context) error {
	name, err := e.device.GetDeviceName(ctx)
	if err != nil {
		return err
	}

	e.settings.PutValue(TextKey(e.overlayID), name)

	return nil
}

// resolveInput gathers the external values Resolve may need for this
// source. Telemetry capabilities are probed with type assertions;
// temperature wins over humidity when a device has both.
func (e *Engine) resolveInput(src entity.OverlaySource) ResolveInput {
	in := ResolveInput{LastFace: e.tracker.Last()}

	if src.Type != entity.OverlayTypeDevice || src.DeviceRef == "" || e.telemetry == nil {
		return in
	}

	dev, ok := e.telemetry.Lookup(src.DeviceRef)
	if !ok {
		return in
	}

	if ts, ok := dev.(TemperatureSensor); ok {
		in.Temperature = &TemperatureReading{Value: ts.Temperature(), Unit: ts.Unit()}

		return in
	}

	if hs, ok := dev.(HumiditySensor); ok {
		humidity := hs.Humidity()
		in.Humidity = &humidity
	}

	return in
}

// DuplicateFrom clones another camera's visible overlay and its source
// configuration into this camera: a one-time copy followed by a single
// immediate write.
func (e *Engine) DuplicateFrom(ctx context.Context, fromCameraID string) error {
	other, ok := e.registry.Get(fromCameraID)
	if !ok {
		return ErrCameraNotRegistered
	}

	osd, err := other.device.GetOsd(ctx)
	if err != nil {
		return err
	}

	for _, key := range []func(string) string{DeviceKey, TypeKey, PrefixKey, TextKey, PositionKey} {
		e.settings.PutValue(key(e.overlayID), other.settings.GetValue(key(other.overlayID)))
	}

	return e.writeOverlay(ctx, osd.Osd.OsdChannel.Name, osd.Osd.OsdChannel.Pos)
}
