package remote

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable is returned when a remote call is made without
// endpoint/key configuration. No network request is attempted.
var ErrBackendUnavailable = errors.New("remote backend unavailable: endpoint or access key not configured")

// StoreError is a non-success HTTP response from the remote backend. It is
// propagated to the caller untouched; the adapter neither retries nor falls
// back to local storage.
type StoreError struct {
	Status int
	Body   string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("remote store: status %d: %s", e.Status, e.Body)
}
