package maintenance

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRecordID       = errors.New("invalid maintenance record id")
	ErrInvalidType           = errors.New("invalid maintenance type")
	ErrInvalidCost           = errors.New("invalid cost")
	ErrInvalidMileage        = errors.New("invalid mileage")

	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrRecordNotFound  = errors.New("maintenance record not found")
)
