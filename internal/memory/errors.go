package memory

import "errors"

// Kind classifies a memory operation failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Sentinels for errors.Is checks against *Error values.
var (
	ErrValidation = errors.New("memory: validation failed")
	ErrNotFound   = errors.New("memory: not found")
	ErrInternal   = errors.New("memory: internal error")
)

// Error is a classified failure. Title and Message are safe to show to
// callers; Err holds the underlying cause for internal failures and must
// not be echoed back.
type Error struct {
	Kind    Kind
	Code    string
	Title   string
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Title + ": " + e.Err.Error()
	}
	return e.Title
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the package sentinels by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInternal:
		return e.Kind == KindInternal
	}
	return false
}

// AsError extracts an *Error from err. Errors that are not classified are
// reported as internal with the given title.
func AsError(err error, title string) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return internal(title, err)
}

const usageRemember = `This API expects the memory to be provided in the request body as JSON. For example: { "user_id": "123", "memory": "Remember this." }.`

const usageForget = `This API expects the memory_id, which is the ID of the memory to delete, to be provided in the query string. For example: /memories?user_id=abcd&memory_id=123.`

const usageForgetAll = `This API expects the user_id, which is the ID of the user whose memories are to be deleted, to be provided in the query string. For example: /memories/all?user_id=abcd.`

// Generic titles for internal failures.
const (
	titleSaveFailed     = "Failed to save memory."
	titleRetrieveFailed = "Failed to retrieve memories."
	titleDeleteFailed   = "Failed to delete memory."
	titleDeleteAllFail  = "Failed to delete memories."
)

func missingField(code, field, details string) *Error {
	msg := "`" + field + "` is required."
	return &Error{
		Kind:    KindValidation,
		Code:    code,
		Title:   msg,
		Message: msg,
		Details: details,
	}
}

func notFound(title, message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    "not_found",
		Title:   title,
		Message: message,
	}
}

func internal(title string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    "internal_error",
		Title:   title,
		Message: title,
		Err:     cause,
	}
}
