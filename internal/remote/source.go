// Package remote is the boundary to the hosted data store that owns the
// portal's content tables.
package remote

import (
	"context"
	"errors"
	"fmt"
)

// Query narrows a collection fetch.
type Query struct {
	// OrderBy is a column followed by an optional direction, e.g. "date desc".
	OrderBy string
	// Limit caps the number of rows. Zero means no limit.
	Limit int
}

// Source reads and writes named resources in the remote data store.
//
// dst arguments are pointers to slices of the resource's row type; related
// rows named in FetchJoined must exist as associations on that row type.
type Source interface {
	FetchCollection(ctx context.Context, resource string, q Query, dst any) error
	FetchJoined(ctx context.Context, resource string, relations []string, dst any) error
	InsertRecord(ctx context.Context, resource string, record any) error
}

// Kind classifies a remote failure.
type Kind int

const (
	// KindUnavailable covers network, driver and server failures.
	KindUnavailable Kind = iota
	// KindNotProvisioned means the resource's backing table does not exist yet.
	KindNotProvisioned
	// KindTimeout means the call ran past its deadline.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotProvisioned:
		return "not provisioned"
	case KindTimeout:
		return "timeout"
	default:
		return "unavailable"
	}
}

// Error is returned by every Source failure.
type Error struct {
	Op       string
	Resource string
	Kind     Kind
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote %s %s: %s: %v", e.Op, e.Resource, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindUnavailable if err is not an *Error.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnavailable
}

// IsNotProvisioned reports whether err says a resource's table is missing.
func IsNotProvisioned(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindNotProvisioned
}

// IsTimeout reports whether err is a remote call that ran out of time.
func IsTimeout(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindTimeout
}
