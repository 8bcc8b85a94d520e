// Package devices implements the per-camera operations: the OSD document as
// a read-modify-write unit, the device name, recording search and status.
package devices

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/pkg/camerrors"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

// Auth is the session-decorated request path. Implemented by the sessions
// usecase.
type Auth interface {
	Do(ctx context.Context, cmds []reolink.Command) (reolink.Results, error)
	Get(ctx context.Context, query url.Values) ([]byte, error)
	Token(ctx context.Context) (string, error)
}

var ErrDevicesUseCase = camerrors.CreateCameraError("DevicesUseCase")

// DeviceStateError marks a device that answered but returned no usable
// value; treated as temporarily unavailable, never fatal.
type DeviceStateError struct {
	Cam camerrors.InternalError
}

func (e DeviceStateError) Error() string {
	return e.Cam.Error()
}

func (e DeviceStateError) Wrap(call, function string, err error) error {
	_ = e.Cam.Wrap(call, function, err)
	e.Cam.Message = "device state temporarily unavailable"

	return e
}

// UseCase -.
type UseCase struct {
	auth    Auth
	client  *reolink.Client
	channel int
	log     logger.Interface
}

// New -.
func New(auth Auth, client *reolink.Client, log logger.Interface) *UseCase {
	return &UseCase{
		auth:    auth,
		client:  client,
		channel: client.Channel(),
		log:     log,
	}
}

// result extracts one command's result, converting the absent-value and
// per-command-error cases into DeviceStateError.
func (uc *UseCase) result(results reolink.Results, cmd string) (reolink.Result, error) {
	res, ok := results.Find(cmd)
	if !ok {
		return reolink.Result{}, DeviceStateError{Cam: ErrDevicesUseCase}.Wrap(cmd, "results.Find", nil)
	}

	if err := res.Err(); err != nil {
		return reolink.Result{}, DeviceStateError{Cam: ErrDevicesUseCase}.Wrap(cmd, "device", err)
	}

	if len(res.Value) == 0 {
		return reolink.Result{}, DeviceStateError{Cam: ErrDevicesUseCase}.Wrap(cmd, "empty value", nil)
	}

	return res, nil
}

// GetOsd fetches the OSD document for the channel.
func (uc *UseCase) GetOsd(ctx context.Context) (*reolink.OsdValue, error) {
	cmds := []reolink.Command{{
		Cmd:    reolink.CmdGetOsd,
		Action: 1,
		Param:  reolink.ChannelParam{Channel: uc.channel},
	}}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return nil, err
	}

	res, err := uc.result(results, reolink.CmdGetOsd)
	if err != nil {
		return nil, err
	}

	var value reolink.OsdValue
	if err := json.Unmarshal(res.Value, &value); err != nil {
		return nil, DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("GetOsd", "json.Unmarshal", err)
	}

	return &value, nil
}

// SetOsd writes the OSD document back, echoing every field of the addressed
// sub-document: the device treats a write as replacing it wholesale.
func (uc *UseCase) SetOsd(ctx context.Context, value *reolink.OsdValue) error {
	value.Osd.Channel = uc.channel

	cmds := []reolink.Command{{
		Cmd:    reolink.CmdSetOsd,
		Action: 0,
		Param:  value,
	}}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return err
	}

	if res, ok := results.Find(reolink.CmdSetOsd); ok {
		if cmdErr := res.Err(); cmdErr != nil {
			return DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("SetOsd", "device", cmdErr)
		}
	}

	return nil
}

// GetDeviceName returns the device's self-reported name. An empty name is a
// DeviceStateError so callers skip the step instead of caching blanks.
func (uc *UseCase) GetDeviceName(ctx context.Context) (string, error) {
	cmds := []reolink.Command{{Cmd: reolink.CmdGetDevName, Action: 0}}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return "", err
	}

	res, err := uc.result(results, reolink.CmdGetDevName)
	if err != nil {
		return "", err
	}

	var value reolink.DevNameValue
	if err := json.Unmarshal(res.Value, &value); err != nil {
		return "", DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("GetDevName", "json.Unmarshal", err)
	}

	if value.DevName.Name == "" {
		return "", DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("GetDevName", "empty name", nil)
	}

	return value.DevName.Name, nil
}

// SetDeviceName -.
func (uc *UseCase) SetDeviceName(ctx context.Context, name string) error {
	cmds := []reolink.Command{{
		Cmd:    reolink.CmdSetDevName,
		Action: 0,
		Param:  reolink.DevNameValue{DevName: reolink.DevName{Name: name}},
	}}

	results, err := uc.auth.Do(ctx, cmds)
	if err != nil {
		return err
	}

	if res, ok := results.Find(reolink.CmdSetDevName); ok {
		if cmdErr := res.Err(); cmdErr != nil {
			return DeviceStateError{Cam: ErrDevicesUseCase}.Wrap("SetDevName", "device", cmdErr)
		}
	}

	return nil
}
