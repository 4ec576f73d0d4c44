package geom

import "errors"

// ErrNoPoints is returned when a bounding box is requested for an empty point set.
var ErrNoPoints = errors.New("no points to bound")
