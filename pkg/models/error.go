package models

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// StatusRequestCancelled unofficial status code, actually it won't be sent over the wire, we just need a marker
const StatusRequestCancelled = 499

type ErrorWithCode interface {
	error
	Code() int
}

type ErrorMessage struct {
	code    int
	err     error
	Message string `json:"message"`
}

func NewErrorMessage(code int, err error) *ErrorMessage {
	return &ErrorMessage{
		code:    code,
		err:     err,
		Message: err.Error(),
	}
}

func (e *ErrorMessage) Code() int {
	return e.code
}

func (e *ErrorMessage) Error() string {
	return e.err.Error()
}

func (e *ErrorMessage) Unwrap() error {
	return e.err
}

func NewBadRequestError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusBadRequest, err)
}

func NewNotFoundError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusNotFound, err)
}

func NewConflictError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusConflict, err)
}

func NewQuotaExceededError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusTooManyRequests, err)
}

func NewServiceUnavailableError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusServiceUnavailable, err)
}

func NewInternalServerError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusInternalServerError, err)
}

func NewDriverError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusBadGateway, err)
}

func NewTimeoutError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusGatewayTimeout, err)
}

func NewCancelledError(err error) *ErrorMessage {
	return NewErrorMessage(StatusRequestCancelled, err)
}

func WrapTimeoutErr(err error, msg string) error {
	var e ErrorWithCode
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &e) {
		err = NewTimeoutError(err)
	}
	return errors.Wrap(err, msg)
}

func WrapCancelledErr(err error) error {
	var e ErrorWithCode
	if errors.Is(err, context.Canceled) && !errors.As(err, &e) {
		err = NewCancelledError(err)
	}
	return err
}
