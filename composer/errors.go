package composer

import "errors"

// ErrNoHandler is reported through the observer when Submit runs with no
// handler bound. The draft is left intact.
var ErrNoHandler = errors.New("no submit handler bound")
