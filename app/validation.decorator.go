package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/go-arrower/catalog/ctx"
)

const CtxValidated ctx.CTXKey = "catalog.validated"

// PassedValidation reports if a use case was called through a validation decorator.
// Use it in case you want to ensure the dependencies are set up correctly before continuing with your business logic.
func PassedValidation(ctx context.Context) bool {
	if v, ok := ctx.Value(CtxValidated).(bool); ok {
		return v
	}

	return false
}

// NewValidatedRequest checks the validate struct tags of req before calling the use case.
// The validator.ValidationErrors are returned unwrapped, so the HTTP error handler
// of the catalog can answer them with 400, e.g. a brand name shorter than three letters.
// If validate is nil, a new validator with required structs enabled is used.
func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	return &requestValidatingDecorator[Req, Res]{
		validate: orNewValidator(validate),
		base:     req,
	}
}

type requestValidatingDecorator[Req any, Res any] struct {
	validate *validator.Validate
	base     Request[Req, Res]
}

func (d *requestValidatingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	if err := d.validate.Struct(req); err != nil {
		return *new(Res), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), req) //nolint:wrapcheck // decorate but not change anything
}

func NewValidatedCommand[C any](validate *validator.Validate, cmd Command[C]) Command[C] {
	return &commandValidatingDecorator[C]{
		validate: orNewValidator(validate),
		base:     cmd,
	}
}

type commandValidatingDecorator[C any] struct {
	validate *validator.Validate
	base     Command[C]
}

func (d *commandValidatingDecorator[C]) H(ctx context.Context, cmd C) error {
	if err := d.validate.Struct(cmd); err != nil {
		return err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), cmd) //nolint:wrapcheck // decorate but not change anything
}

func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	return &queryValidatingDecorator[Q, Res]{
		validate: orNewValidator(validate),
		base:     query,
	}
}

type queryValidatingDecorator[Q any, Res any] struct {
	validate *validator.Validate
	base     Query[Q, Res]
}

func (d *queryValidatingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	if err := d.validate.Struct(query); err != nil {
		return *new(Res), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), query) //nolint:wrapcheck // decorate but not change anything
}

func orNewValidator(validate *validator.Validate) *validator.Validate {
	if validate == nil {
		return validator.New(validator.WithRequiredStructEnabled())
	}

	return validate
}
