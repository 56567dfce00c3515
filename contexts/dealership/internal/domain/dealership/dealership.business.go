// Package dealership contains the cars and brands a dealership offers.
package dealership

import (
	"github.com/go-arrower/catalog/repository"
)

// Brand is a car manufacturer.
// CreatedAt and UpdatedAt are epoch milliseconds, set by the repository.
type Brand struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

// BrandPatch contains the fields of a Brand that can be changed after creation.
type BrandPatch struct {
	Name *string
}

func (p BrandPatch) Apply(brand Brand) Brand {
	if p.Name != nil {
		brand.Name = *p.Name
	}

	return brand
}

type Car struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// CarPatch contains the fields of a Car that can be changed after creation.
type CarPatch struct {
	Brand *string
	Model *string
}

func (p CarPatch) Apply(car Car) Car {
	if p.Brand != nil {
		car.Brand = *p.Brand
	}

	if p.Model != nil {
		car.Model = *p.Model
	}

	return car
}

type (
	BrandRepository interface {
		repository.Repository[Brand, string]
	}

	CarRepository interface {
		repository.Repository[Car, string]
	}
)
