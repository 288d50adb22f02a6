package store

import "errors"

// ErrSourceUnavailable wraps a failure to open a data source at load time.
// Callers check for it with errors.Is and degrade the affected topics
// instead of aborting the process.
var ErrSourceUnavailable = errors.New("data source unavailable")
