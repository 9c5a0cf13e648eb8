package vehicle

import "time"

type VehicleDB struct {
	ID              int64
	Name            string
	Make            string
	Model           string
	Year            int
	LicensePlate    string
	VIN             string
	Status          string
	FuelType        string
	Mileage         int64
	LastServiceDate *time.Time
	NextServiceDate *time.Time
	PurchaseDate    time.Time
	PurchasePrice   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type VehicleModifyDB struct {
	ID              *int64
	Name            *string
	Make            *string
	Model           *string
	Year            *int
	LicensePlate    *string
	VIN             *string
	Status          *string
	FuelType        *string
	Mileage         *int64
	LastServiceDate *time.Time
	NextServiceDate *time.Time
	PurchaseDate    *time.Time
	PurchasePrice   *float64
}
