package assignment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAssignmentID   = errors.New("invalid assignment id")
	ErrInvalidStatus         = errors.New("invalid assignment status")

	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrVehicleNotAvailable    = errors.New("vehicle is not available")
	ErrVehicleAlreadyAssigned = errors.New("vehicle is already assigned")
)
