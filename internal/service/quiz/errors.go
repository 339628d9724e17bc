package quiz

import "errors"

// Kind classifies a quiz generation failure for the caller.
type Kind int

const (
	// KindConfiguration means a required credential or setting is missing.
	KindConfiguration Kind = iota + 1
	// KindInput means the caller supplied nothing to generate questions from.
	KindInput
	// KindTransient means the completion endpoint was unavailable or rate
	// limited through the whole retry budget.
	KindTransient
	// KindMalformedResponse means the model's reply could not be parsed or
	// failed shape validation.
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInput:
		return "input"
	case KindTransient:
		return "transient"
	case KindMalformedResponse:
		return "malformed_response"
	}
	return "unknown"
}

// Error is the typed failure every Generate call returns on any error path.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Message + ": " + e.err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

// KindOf returns the classification of err if it is a quiz *Error.
func KindOf(err error) (Kind, bool) {
	var qerr *Error
	if errors.As(err, &qerr) {
		return qerr.Kind, true
	}
	return 0, false
}
