package geom

import "errors"

// ErrInvertedAABB is returned when constructed bounds have mins exceeding maxs
// on some axis.
var ErrInvertedAABB = errors.New("geom: aabb mins exceed maxs")

// ErrNegativeRadius is returned by NewSphere for a radius below zero.
var ErrNegativeRadius = errors.New("geom: sphere radius is negative")
