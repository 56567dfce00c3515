package app

import (
	"context"
	"errors"
)

// ErrUseCaseFailed is returned by the failing stubs below.
var ErrUseCaseFailed = errors.New("usecase failed")

// Stubs for use cases, to test calling code like web controllers
// without setting up repositories.

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] {
	return stubHandler[Req, Res]{}
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return stubHandler[Req, Res]{err: ErrUseCaseFailed}
}

func TestSuccessQueryHandler[Q any, Res any]() Query[Q, Res] {
	return stubHandler[Q, Res]{}
}

func TestFailureQueryHandler[Q any, Res any]() Query[Q, Res] {
	return stubHandler[Q, Res]{err: ErrUseCaseFailed}
}

func TestSuccessCommandHandler[C any]() Command[C] {
	return stubCommand[C]{}
}

func TestFailureCommandHandler[C any]() Command[C] {
	return stubCommand[C]{err: ErrUseCaseFailed}
}

// stubHandler serves as Request and Query, their signatures are the same.
type stubHandler[In any, Out any] struct {
	err error
}

func (h stubHandler[In, Out]) H(_ context.Context, _ In) (Out, error) { //nolint:ireturn // valid use of generics
	return *new(Out), h.err
}

type stubCommand[C any] struct {
	err error
}

func (h stubCommand[C]) H(_ context.Context, _ C) error {
	return h.err
}
