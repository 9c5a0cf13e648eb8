package vehicle

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidVIN            = errors.New("invalid vin")
	ErrInvalidYear           = errors.New("invalid year")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidMileage        = errors.New("invalid mileage")
	ErrInvalidPrice          = errors.New("invalid purchase price")

	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrConflict        = errors.New("vehicle already exists")
)
