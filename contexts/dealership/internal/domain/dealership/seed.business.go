package dealership

import "time"

// BrandSeed returns the brands every new dealership starts with.
// The creation time is set to now, as the fixture is built.
func BrandSeed(now time.Time) []Brand {
	createdAt := now.UnixMilli()

	return []Brand{
		{ID: "ca1ad151-b0ab-436b-a2ee-044729f07820", Name: "Toyota", CreatedAt: createdAt},
		{ID: "a6f00f50-c776-45a5-863b-c05d140145d4", Name: "Honda", CreatedAt: createdAt},
		{ID: "210b50b9-a49f-48a5-8461-3333cdaddea5", Name: "Jeep", CreatedAt: createdAt},
	}
}

// CarSeed returns the cars every new dealership starts with.
func CarSeed() []Car {
	return []Car{
		{ID: "ca1ad151-b0ab-436b-a2ee-044729f07820", Brand: "Toyota", Model: "Corolla"},
		{ID: "a6f00f50-c776-45a5-863b-c05d140145d4", Brand: "Honda", Model: "Civic"},
		{ID: "210b50b9-a49f-48a5-8461-3333cdaddea5", Brand: "Jeep", Model: "Cherokee"},
	}
}
