package trip

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTripID         = errors.New("invalid trip id")
	ErrInvalidStatus         = errors.New("invalid trip status")
	ErrInvalidMileage        = errors.New("invalid mileage")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrTripNotFound    = errors.New("trip not found")
)
