package apperr

import "fmt"

// Kind is the closed set of failure classes the service layer reports.
// The HTTP boundary maps each kind to a response shape; anything it does
// not recognize is treated as an internal failure.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindMalformedID
	KindStorage
)

// FieldError is a single violated rule, addressed by its JSON field path
// (e.g. "questions[1].options").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("app error (kind %d)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func MalformedID(message string) *Error {
	return &Error{Kind: KindMalformedID, Message: message}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage failure", Err: err}
}
