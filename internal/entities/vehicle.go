package entities

import (
	"time"
)

type Vehicle struct {
	ID              int64
	Name            string
	Make            string
	Model           string
	Year            int
	LicensePlate    string
	VIN             string
	Status          VehicleStatusType
	FuelType        string
	Mileage         int64
	LastServiceDate *time.Time
	NextServiceDate *time.Time
	PurchaseDate    time.Time
	PurchasePrice   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type VehicleStatusType string

const (
	VehicleActive      VehicleStatusType = "active"
	VehicleMaintenance VehicleStatusType = "maintenance"
	VehicleRetired     VehicleStatusType = "retired"
)

const DefaultVehicleStatus = VehicleActive

func (t VehicleStatusType) String() string {
	return string(t)
}

type VehicleModify struct {
	ID              *int64
	Name            *string
	Make            *string
	Model           *string
	Year            *int
	LicensePlate    *string
	VIN             *string
	Status          *VehicleStatusType
	FuelType        *string
	Mileage         *int64
	LastServiceDate *time.Time
	NextServiceDate *time.Time
	PurchaseDate    *time.Time
	PurchasePrice   *float64
}
