package composer

import "github.com/messagekit/composer/observability"

// Composer event types emitted during the submit pipeline.
const (
	EventSubmitStart    observability.EventType = "composer.submit.start"
	EventSubmitComplete observability.EventType = "composer.submit.complete"
	EventSubmitError    observability.EventType = "composer.submit.error"
)
