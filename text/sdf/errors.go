package sdf

import (
	"errors"
	"fmt"
)

// ErrInvalidBitmap is returned when a bitmap's pixel buffer is shorter than
// its dimensions require.
var ErrInvalidBitmap = errors.New("sdf: pixel buffer does not match bitmap size")

// ParamsError reports distance-field parameters that cannot be used.
type ParamsError struct {
	Params Params
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("sdf: invalid params (pad=%d, radius=%g)", e.Params.Pad, e.Params.Radius)
}
