package devices

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
)

// StreamType selects which recording stream a search addresses.
const (
	StreamMain = "main"
	StreamSub  = "sub"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

func searchTime(t time.Time) reolink.SearchTime {
	return reolink.SearchTime{
		Year: t.Year(),
		Mon:  int(t.Month()),
		Day:  t.Day(),
		Hour: t.Hour(),
		Min:  t.Minute(),
		Sec:  t.Second(),
	}
}

// SearchVideoClips lists recordings between start and end. The device only
// supports fetching within one day: a missing end, or an end on a later
// day, is clamped to the end of the start day.
func (uc *UseCase) SearchVideoClips(ctx context.Context, start, end time.Time, streamType string) ([]reolink.SearchFile, error) {
	if streamType == "" {
		streamType = StreamMain
	}

	if end.IsZero() || !sameDay(start, end) {
		end = time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 59, 0, start.Location())
	}

	cmds := []reolink.Command{{
		Cmd:    reolink.CmdSearch,
		Action: 1,
		Param: reolink.SearchParam{
			Search: reolink.SearchFilter{
				Channel:    uc.channel,
				StreamType: streamType,
				OnlyStatus: 0,
				StartTime:  searchTime(start),
				EndTime:    searchTime(end),
			},
		},
	}}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return nil, err
	}

	res, err := uc.result(results, reolink.CmdSearch)
	if err != nil {
		return nil, err
	}

	var value reolink.SearchResultValue
	if err := json.Unmarshal(res.Value, &value); err != nil {
		return nil, DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("Search", "json.Unmarshal", err)
	}

	return value.SearchResult.File, nil
}

// BatteryStatus is the derived battery/power view of the camera.
type BatteryStatus struct {
	BatteryPercent int  `json:"batteryPercent"`
	Sleeping       bool `json:"sleeping"`
}

// GetBatteryStatus batches GetBatteryInfo with GetChannelstatus. A camera
// that is offline counts as sleeping.
func (uc *UseCase) GetBatteryStatus(ctx context.Context) (BatteryStatus, error) {
	cmds := []reolink.Command{
		{Cmd: reolink.CmdGetBatteryInfo, Action: 0, Param: reolink.ChannelParam{Channel: uc.channel}},
		{Cmd: reolink.CmdGetChannelStatus},
	}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return BatteryStatus{}, err
	}

	res, err := uc.result(results, reolink.CmdGetBatteryInfo)
	if err != nil {
		return BatteryStatus{}, err
	}

	var battery reolink.BatteryInfoValue
	if err := json.Unmarshal(res.Value, &battery); err != nil {
		return BatteryStatus{}, DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("GetBatteryInfo", "json.Unmarshal", err)
	}

	status := BatteryStatus{
		BatteryPercent: battery.Battery.BatteryPercent,
		Sleeping:       true,
	}

	// Channel status is advisory; a partial batch still yields battery data.
	if chRes, ok := results.Find(reolink.CmdGetChannelStatus); ok && chRes.Err() == nil && len(chRes.Value) > 0 {
		var channels reolink.ChannelStatusValue
		if err := json.Unmarshal(chRes.Value, &channels); err == nil {
			for _, ch := range channels.Status {
				if ch.Channel == uc.channel {
					online := ch.Online == 1
					status.Sleeping = !online || ch.Sleep == 1
				}
			}
		}
	}

	return status, nil
}

// GetWhiteLed returns the white LED configuration untouched.
func (uc *UseCase) GetWhiteLed(ctx context.Context) (json.RawMessage, error) {
	cmds := []reolink.Command{{
		Cmd:    reolink.CmdGetWhiteLed,
		Action: 0,
		Param:  reolink.ChannelParam{Channel: uc.channel},
	}}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return nil, err
	}

	res, err := uc.result(results, reolink.CmdGetWhiteLed)
	if err != nil {
		return nil, err
	}

	return res.Value, nil
}

// Snapshot fetches a JPEG frame.
func (uc *UseCase) Snapshot(ctx context.Context) ([]byte, error) {
	token, err := uc.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	return uc.client.Snap(ctx, token, strconv.FormatInt(time.Now().UnixMilli(), 10))
}

// VideoClipURLs builds the playback/download URLs for a clip path using the
// current session token.
func (uc *UseCase) VideoClipURLs(ctx context.Context, clipPath string) (reolink.ClipURLs, error) {
	token, err := uc.auth.Token(ctx)
	if err != nil {
		return reolink.ClipURLs{}, err
	}

	return uc.client.VideoClipURLs(clipPath, token), nil
}
