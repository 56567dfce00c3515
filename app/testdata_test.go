package app_test

import (
	"context"
	"errors"

	"github.com/go-arrower/catalog/app"
)

var (
	ctx          = context.Background()
	errSomeError = errors.New("some-error")
)

type (
	request struct {
		Name string `validate:"omitempty,min=3"`
	}
	response struct{}
)

// validatedRequestHandler reports if it was called after passing validation.
type validatedRequestHandler struct {
	passed bool
}

func (h *validatedRequestHandler) H(ctx context.Context, _ request) (response, error) {
	h.passed = app.PassedValidation(ctx)

	return response{}, nil
}

type failingCommandHandler struct{}

func (h *failingCommandHandler) H(_ context.Context, _ request) error {
	return errSomeError
}
