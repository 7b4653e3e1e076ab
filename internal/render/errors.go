package render

import "fmt"

// ErrorKind classifies a failed generation.
type ErrorKind int

const (
	// KindTransport covers requests that never produced a readable JSON body.
	KindTransport ErrorKind = iota
	// KindApplication covers completed requests the service marked as failed.
	KindApplication
)

const (
	fallbackTransportMessage   = "Something went wrong."
	fallbackApplicationMessage = "Video generation failed"
)

// Error is returned by Generate. Error() is safe to show to the user.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind == KindApplication {
		return fallbackApplicationMessage
	}
	return fallbackTransportMessage
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail describes the failure for logs, including status and cause.
func (e *Error) Detail() string {
	kind := "transport"
	if e.Kind == KindApplication {
		kind = "application"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error (status=%d): %s: %v", kind, e.Status, e.Error(), e.Err)
	}
	return fmt.Sprintf("%s error (status=%d): %s", kind, e.Status, e.Error())
}
