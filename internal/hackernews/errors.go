package hackernews

import "errors"

// ErrNotFound is returned when the API has no item for an id.
var ErrNotFound = errors.New("not found")
