package editor

import "errors"

var (
	ErrNothingSelected = errors.New("nothing selected of the right kind")
	ErrNotADoor        = errors.New("selected wall is not a door")
	ErrInvalidValue    = errors.New("invalid value")
)

// NoticeError is a rejected command the user should be told about. The
// document is never modified when one is returned.
type NoticeError struct {
	Title   string
	Message string
	Kind    error
}

func (e *NoticeError) Error() string {
	return e.Title + ": " + e.Message
}

func (e *NoticeError) Unwrap() error {
	return e.Kind
}

func notice(kind error, title, message string) *NoticeError {
	return &NoticeError{Title: title, Message: message, Kind: kind}
}
