package scene

import "errors"

// ErrEmpty is returned by New when given zero objects.
var ErrEmpty = errors.New("scene: cannot build a scene with no objects")
