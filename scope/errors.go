package scope

import "errors"

// ErrNoScope is the panic value when Use is called on a context with no
// attached Provider.
var ErrNoScope = errors.New("scope: no composer scope attached to context")
