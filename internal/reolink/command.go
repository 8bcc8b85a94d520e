package reolink

import (
	"encoding/json"
	"fmt"

	"github.com/apocaliss92/reolink-osd-sync/pkg/camerrors"
)

// Command names used against the api.cgi endpoint.
const (
	CmdLogin            = "Login"
	CmdLogout           = "Logout"
	CmdGetOsd           = "GetOsd"
	CmdSetOsd           = "SetOsd"
	CmdGetDevName       = "GetDevName"
	CmdSetDevName       = "SetDevName"
	CmdSearch           = "Search"
	CmdGetBatteryInfo   = "GetBatteryInfo"
	CmdGetChannelStatus = "GetChannelstatus"
	CmdGetWhiteLed      = "GetWhiteLed"
	CmdSnap             = "Snap"
)

// Command is one entry of the request batch the device accepts per call.
type Command struct {
	Cmd    string      `json:"cmd"`
	Action int         `json:"action,omitempty"`
	Param  interface{} `json:"param,omitempty"`
}

// CmdError is the per-command error object the device returns inside an
// otherwise successful batch.
type CmdError struct {
	RspCode int    `json:"rspCode"`
	Detail  string `json:"detail"`
}

func (e *CmdError) Error() string {
	return fmt.Sprintf("rspCode %d: %s", e.RspCode, e.Detail)
}

// Result is one entry of the response batch, in the same order as the
// request. Value stays raw so each caller decodes only the command it
// asked for.
type Result struct {
	Cmd   string          `json:"cmd"`
	Code  int             `json:"code"`
	Value json.RawMessage `json:"value,omitempty"`
	Error *CmdError       `json:"error,omitempty"`
}

// Err returns the command error, if any.
func (r Result) Err() error {
	if r.Error != nil {
		return r.Error
	}

	return nil
}

// Results is the decoded response batch.
type Results []Result

// Find returns the first result for the given command name. Partial success
// is valid: a batch may carry both values and per-command errors.
func (rs Results) Find(cmd string) (Result, bool) {
	for _, r := range rs {
		if r.Cmd == cmd {
			return r, true
		}
	}

	return Result{}, false
}

var ErrReolinkClient = camerrors.CreateCameraError("ReolinkClient")

// TransportError covers network-level failures (timeout, refused
// connection, DNS) and undecodable responses.
type TransportError struct {
	Cam camerrors.InternalError
}

func (e TransportError) Error() string {
	return e.Cam.Error()
}

func (e TransportError) Wrap(call, function string, err error) error {
	_ = e.Cam.Wrap(call, function, err)
	e.Cam.Message = "camera unreachable"

	return e
}
