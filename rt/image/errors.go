package image

import "errors"

// ErrInvalidResolution is returned by NewBuffer when width or height is
// not positive.
var ErrInvalidResolution = errors.New("image: width and height must both be > 0")

// ErrOutOfBounds is returned by Set/At for a pixel outside the buffer.
var ErrOutOfBounds = errors.New("image: pixel out of bounds")
