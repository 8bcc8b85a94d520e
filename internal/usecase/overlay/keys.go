package overlay

import "github.com/apocaliss92/reolink-osd-sync/internal/entity"

// OverlayID is the single OSD slot this engine manages per camera: the
// channel-name overlay.
const OverlayID = "DevName"

// Settings keys per overlay id.
func DeviceKey(id string) string   { return id + "_device" }
func TypeKey(id string) string     { return id + "_type" }
func PrefixKey(id string) string   { return id + "_prefix" }
func TextKey(id string) string     { return id + "_text" }
func PositionKey(id string) string { return id + "_position" }

// ReadOverlaySource materializes the overlay configuration from the store.
func ReadOverlaySource(store SettingsStore, id string) entity.OverlaySource {
	return entity.OverlaySource{
		ID:        id,
		Type:      entity.OverlayType(store.GetValue(TypeKey(id))),
		DeviceRef: store.GetValue(DeviceKey(id)),
		Prefix:    store.GetValue(PrefixKey(id)),
		Text:      store.GetValue(TextKey(id)),
		Position:  store.GetValue(PositionKey(id)),
	}
}
