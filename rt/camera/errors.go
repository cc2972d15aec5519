package camera

import "errors"

// ErrInvalidResolution is returned by New when width or height is zero.
var ErrInvalidResolution = errors.New("camera: width and height must both be > 0")

// ErrPixelOutOfBounds is returned by Ray when the requested pixel falls
// outside the camera's resolution.
var ErrPixelOutOfBounds = errors.New("camera: pixel out of bounds")
