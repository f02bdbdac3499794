package usecase

import (
	"errors"
	"strings"

	"projectlink/internal/pkg/validation"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoSession       = errors.New("no active session")
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrUnknownKind     = errors.New("unknown kind")
)

// InputError carries field messages for a rejected input. It matches ErrInvalidInput.
type InputError struct {
	Messages []string
}

func (e *InputError) Error() string {
	if len(e.Messages) == 0 {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return &InputError{Messages: verr.Messages}
	}
	return &InputError{Messages: []string{err.Error()}}
}

func invalidField(msg string) error {
	return &InputError{Messages: []string{msg}}
}

func validateStruct(s any) error {
	if err := validation.Struct(s); err != nil {
		return invalidInput(err)
	}
	return nil
}
