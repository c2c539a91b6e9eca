package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so CLI output and logs can be
// correlated without parsing messages.
const (
	textCodeInvalidMessage = "READMEGEN_INVALID_MESSAGE"
	textCodeRunCancelled   = "READMEGEN_RUN_CANCELLED"
	textCodeRunTimeout     = "READMEGEN_RUN_TIMEOUT"
	textCodeRunContext     = "READMEGEN_RUN_CONTEXT"
	textCodeRunFailed      = "READMEGEN_RUN_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "message validation failed").
		WithTextCode(textCodeInvalidMessage)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "run cancelled").
			WithTextCode(textCodeRunCancelled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "run deadline exceeded").
			WithTextCode(textCodeRunTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "run aborted by context").
			WithTextCode(textCodeRunContext)
	}
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "run failed").
		WithTextCode(textCodeRunFailed)
}
