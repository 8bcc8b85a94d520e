package dto

import "github.com/apocaliss92/reolink-osd-sync/pkg/camerrors"

// NotValidError marks a request payload that failed validation.
type NotValidError struct {
	Cam camerrors.InternalError
}

func (e NotValidError) Error() string {
	return e.Cam.Error()
}

func (e NotValidError) Wrap(call, function string, err error) error {
	_ = e.Cam.Wrap(call, function, err)
	e.Cam.Message = "invalid request"

	return e
}
