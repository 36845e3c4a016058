package probe

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"

	"github.com/woozymasta/mcprobe/internal/models"
)

// FailureKind groups query errors by what went wrong on the wire.
type FailureKind int

const (
	// FailureTimeout means the server did not answer within the timeout.
	FailureTimeout FailureKind = iota + 1

	// FailureConnection means the host could not be resolved or reached.
	FailureConnection

	// FailureProtocol means the server answered with something that is not a valid status response.
	FailureProtocol
)

// String returns a short machine name of the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureConnection:
		return "connection"
	case FailureProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Reason returns the generic, user-facing text for the kind.
func (k FailureKind) Reason() string {
	switch k {
	case FailureTimeout:
		return "Connection timed out"
	case FailureProtocol:
		return "Invalid server response"
	default:
		return "Connection failed"
	}
}

// Failure describes an unsuccessful status query.
type Failure struct {
	Err  error
	Kind FailureKind
}

// Error implements error.
func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Kind.Reason()
	}

	return f.Kind.String() + ": " + f.Err.Error()
}

// Unwrap returns the underlying query error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Result is the outcome of a status query: exactly one of Status and Failure is set.
type Result struct {
	Status  *models.ServerStatus
	Failure *Failure
}

// Succeeded returns a Result carrying the server status.
func Succeeded(status models.ServerStatus) Result {
	return Result{Status: &status}
}

// Failed returns a Result carrying a failure of the given kind.
func Failed(kind FailureKind, err error) Result {
	return Result{Failure: &Failure{Kind: kind, Err: err}}
}

// OK reports whether the query succeeded.
func (r Result) OK() bool {
	return r.Failure == nil && r.Status != nil
}

// Classify maps a query error to a FailureKind.
func Classify(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	var (
		opErr   *net.OpError
		dnsErr  *net.DNSError
		addrErr *net.AddrError
	)
	switch {
	case errors.As(err, &dnsErr), errors.As(err, &addrErr), errors.As(err, &opErr):
		return FailureConnection
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH):
		return FailureConnection
	}

	return FailureProtocol
}
