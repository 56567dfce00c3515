package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
)

type (
	CreateCarRequest struct {
		Brand string `json:"brand" validate:"min=3,max=16"`
		Model string `json:"model" validate:"required"`
	}

	ListCarsQuery struct{}

	GetCarQuery struct {
		ID string `validate:"uuid"`
	}

	UpdateCarRequest struct {
		ID    string  `json:"-"     validate:"uuid"`
		Brand *string `json:"brand" validate:"omitempty,min=3,max=16"`
		Model *string `json:"model"`
	}

	DeleteCarCommand struct {
		ID string `validate:"uuid"`
	}
)

func NewCreateCarRequestHandler(repo dealership.CarRepository) app.Request[CreateCarRequest, dealership.Car] {
	return &createCarRequestHandler{repo: repo}
}

type createCarRequestHandler struct {
	repo dealership.CarRepository
}

func (h *createCarRequestHandler) H(ctx context.Context, req CreateCarRequest) (dealership.Car, error) {
	car, err := h.repo.Create(ctx, dealership.Car{Brand: req.Brand, Model: req.Model})
	if err != nil {
		return dealership.Car{}, fmt.Errorf("could not create car: %w", err)
	}

	return car, nil
}

func NewListCarsQueryHandler(repo dealership.CarRepository) app.Query[ListCarsQuery, []dealership.Car] {
	return &listCarsQueryHandler{repo: repo}
}

type listCarsQueryHandler struct {
	repo dealership.CarRepository
}

func (h *listCarsQueryHandler) H(ctx context.Context, _ ListCarsQuery) ([]dealership.Car, error) {
	cars, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list cars: %w", err)
	}

	return cars, nil
}

func NewGetCarQueryHandler(repo dealership.CarRepository) app.Query[GetCarQuery, dealership.Car] {
	return &getCarQueryHandler{repo: repo}
}

type getCarQueryHandler struct {
	repo dealership.CarRepository
}

func (h *getCarQueryHandler) H(ctx context.Context, query GetCarQuery) (dealership.Car, error) {
	car, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return dealership.Car{}, fmt.Errorf("could not get car: %w", err)
	}

	return car, nil
}

func NewUpdateCarRequestHandler(repo dealership.CarRepository) app.Request[UpdateCarRequest, dealership.Car] {
	return &updateCarRequestHandler{repo: repo}
}

type updateCarRequestHandler struct {
	repo dealership.CarRepository
}

// H merges the given fields into the stored car. Fields not present in req keep their value.
func (h *updateCarRequestHandler) H(ctx context.Context, req UpdateCarRequest) (dealership.Car, error) {
	car, err := h.repo.Update(ctx, req.ID, dealership.CarPatch{Brand: req.Brand, Model: req.Model})
	if err != nil {
		return dealership.Car{}, fmt.Errorf("could not update car: %w", err)
	}

	return car, nil
}

func NewDeleteCarCommandHandler(repo dealership.CarRepository) app.Command[DeleteCarCommand] {
	return &deleteCarCommandHandler{repo: repo}
}

type deleteCarCommandHandler struct {
	repo dealership.CarRepository
}

func (h *deleteCarCommandHandler) H(ctx context.Context, cmd DeleteCarCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("could not delete car: %w", err)
	}

	return nil
}
