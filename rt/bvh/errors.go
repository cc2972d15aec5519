package bvh

import "errors"

// ErrEmpty is returned by Build when given an empty primitive slice.
var ErrEmpty = errors.New("bvh: cannot build over an empty primitive set")

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("bvh: invalid configuration")
