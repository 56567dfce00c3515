package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
)

type (
	CreateBrandRequest struct {
		Name string `json:"name" validate:"min=3,max=16"`
	}

	ListBrandsQuery struct{}

	GetBrandQuery struct {
		ID string `validate:"uuid"`
	}

	UpdateBrandRequest struct {
		ID   string  `json:"-"    validate:"uuid"`
		Name *string `json:"name" validate:"omitempty,min=3,max=16"`
	}

	DeleteBrandCommand struct {
		ID string `validate:"uuid"`
	}
)

func NewCreateBrandRequestHandler(repo dealership.BrandRepository) app.Request[CreateBrandRequest, dealership.Brand] {
	return &createBrandRequestHandler{repo: repo}
}

type createBrandRequestHandler struct {
	repo dealership.BrandRepository
}

// H stores a new brand. Brand names are kept in lower case.
func (h *createBrandRequestHandler) H(ctx context.Context, req CreateBrandRequest) (dealership.Brand, error) {
	brand, err := h.repo.Create(ctx, dealership.Brand{Name: strings.ToLower(req.Name)})
	if err != nil {
		return dealership.Brand{}, fmt.Errorf("could not create brand: %w", err)
	}

	return brand, nil
}

func NewListBrandsQueryHandler(repo dealership.BrandRepository) app.Query[ListBrandsQuery, []dealership.Brand] {
	return &listBrandsQueryHandler{repo: repo}
}

type listBrandsQueryHandler struct {
	repo dealership.BrandRepository
}

func (h *listBrandsQueryHandler) H(ctx context.Context, _ ListBrandsQuery) ([]dealership.Brand, error) {
	brands, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list brands: %w", err)
	}

	return brands, nil
}

func NewGetBrandQueryHandler(repo dealership.BrandRepository) app.Query[GetBrandQuery, dealership.Brand] {
	return &getBrandQueryHandler{repo: repo}
}

type getBrandQueryHandler struct {
	repo dealership.BrandRepository
}

func (h *getBrandQueryHandler) H(ctx context.Context, query GetBrandQuery) (dealership.Brand, error) {
	brand, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return dealership.Brand{}, fmt.Errorf("could not get brand: %w", err)
	}

	return brand, nil
}

func NewUpdateBrandRequestHandler(repo dealership.BrandRepository) app.Request[UpdateBrandRequest, dealership.Brand] {
	return &updateBrandRequestHandler{repo: repo}
}

type updateBrandRequestHandler struct {
	repo dealership.BrandRepository
}

func (h *updateBrandRequestHandler) H(ctx context.Context, req UpdateBrandRequest) (dealership.Brand, error) {
	patch := dealership.BrandPatch{}

	if req.Name != nil {
		name := strings.ToLower(*req.Name)
		patch.Name = &name
	}

	brand, err := h.repo.Update(ctx, req.ID, patch)
	if err != nil {
		return dealership.Brand{}, fmt.Errorf("could not update brand: %w", err)
	}

	return brand, nil
}

func NewDeleteBrandCommandHandler(repo dealership.BrandRepository) app.Command[DeleteBrandCommand] {
	return &deleteBrandCommandHandler{repo: repo}
}

type deleteBrandCommandHandler struct {
	repo dealership.BrandRepository
}

func (h *deleteBrandCommandHandler) H(ctx context.Context, cmd DeleteBrandCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("could not delete brand: %w", err)
	}

	return nil
}
