package content

import (
	"errors"
	"fmt"
)

// Kind classifies a failed content API call.
type Kind int

const (
	KindTransport     Kind = iota + 1 // no response was received
	KindRequestFailed                 // response status outside 2xx
	KindDecode                        // body is not the expected JSON
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "TransportError"
	case KindRequestFailed:
		return "RequestFailed"
	case KindDecode:
		return "DecodeError"
	default:
		return "Unknown"
	}
}

var (
	// ErrEmptyCollection is returned before any I/O when the collection segment is blank.
	ErrEmptyCollection = errors.New("content: collection must not be empty")

	// ErrEmptyBody is wrapped by a KindDecode error when a 2xx body is empty or null.
	ErrEmptyBody = errors.New("content: empty or null response body")
)

// Error is returned by List and Get for every failed round trip.
type Error struct {
	Kind       Kind
	Collection string
	URL        string
	StatusCode int    // set for KindRequestFailed
	Status     string // status text, e.g. "Not Found"
	Err        error  // underlying transport or JSON error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRequestFailed:
		return fmt.Sprintf("content: request to %s failed: %s", e.URL, e.Status)
	case KindDecode:
		return fmt.Sprintf("content: decode %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("content: transport error for %s: %v", e.URL, e.Err)
	}
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a content *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool { return IsKind(err, KindTransport) }

// IsRequestFailed reports whether err is a RequestFailed error.
func IsRequestFailed(err error) bool { return IsKind(err, KindRequestFailed) }

// IsDecode reports whether err is a DecodeError.
func IsDecode(err error) bool { return IsKind(err, KindDecode) }

// StatusCode extracts the upstream HTTP status from a RequestFailed error, or 0.
func StatusCode(err error) int {
	var cerr *Error
	if errors.As(err, &cerr) && cerr.Kind == KindRequestFailed {
		return cerr.StatusCode
	}
	return 0
}
