package models

import (
	"errors"
	"fmt"
)

var (
	// ErrQuestionNotFound is returned when a question is not found.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ErrorKind classifies a failure for the transport layer.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindUnprocessable    ErrorKind = "UNPROCESSABLE"
	KindMethodNotAllowed ErrorKind = "METHOD_NOT_ALLOWED"
	KindBadRequest       ErrorKind = "BAD_REQUEST"
	KindStorage          ErrorKind = "STORAGE_ERROR"
)

// Error is a typed failure raised by the query service.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewNotFoundError(message string) *Error {
	return NewError(KindNotFound, message, nil)
}

func NewUnprocessableError(message string) *Error {
	return NewError(KindUnprocessable, message, nil)
}

func NewBadRequestError(message string, err error) *Error {
	return NewError(KindBadRequest, message, err)
}

func NewStorageError(message string, err error) *Error {
	return NewError(KindStorage, message, err)
}

// KindOf reports the kind of err. Errors that are not *Error are storage failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}
