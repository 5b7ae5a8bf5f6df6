package ports

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a remote order service failure.
type ErrorKind string

const (
	// KindNetworkFailure: transient, remote unreachable.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindNotFound: order id unknown to the service.
	KindNotFound ErrorKind = "not_found"
	// KindUnauthorized: session cannot access this order.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindConflict: mutation rejected, e.g. cancel on an order already
	// terminal server-side.
	KindConflict ErrorKind = "conflict"
	// KindUnknown: unclassified.
	KindUnknown ErrorKind = "unknown"
)

// ServiceError is the typed failure every OrderService implementation
// returns. It never escapes the store/coordinator boundary as a fault;
// callers read it as data.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order service: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("order service: %s", e.Kind)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Kind extracts the ErrorKind from err, defaulting to KindUnknown for
// anything that is not a *ServiceError. Nil yields the empty kind.
func Kind(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err classifies as the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return Kind(err) == kind
}
