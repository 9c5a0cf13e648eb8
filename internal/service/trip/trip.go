package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
	userservice "fleet/internal/service/user"
	vehicleservice "fleet/internal/service/vehicle"
)

type Trip struct {
	repository     Repository
	vehicleService VehicleService
	userService    UserService
	guard          RoleGuard
}

func New(repository Repository, vehicleService VehicleService, userService UserService, guard RoleGuard) *Trip {
	return &Trip{
		repository:     repository,
		vehicleService: vehicleService,
		userService:    userService,
		guard:          guard,
	}
}

func (s *Trip) CreateTrip(ctx context.Context, caller entities.Caller, tripModify entities.TripModify) (*entities.Trip, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpTripCreate); err != nil {
		return nil, err
	}

	if tripModify.VehicleID == nil ||
		tripModify.DriverID == nil ||
		tripModify.StartDate == nil ||
		tripModify.StartLocation == nil ||
		tripModify.Purpose == nil {
		return nil, ErrMissingRequiredFields
	}

	if strings.TrimSpace(*tripModify.StartLocation) == "" {
		return nil, ErrInvalidLocation
	}
	if tripModify.StartMileage != nil && *tripModify.StartMileage < 0 {
		return nil, ErrInvalidMileage
	}
	if tripModify.Status != nil && !isValidStatus(tripModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.vehicleService.GetVehicle(ctx, *tripModify.VehicleID); err != nil {
		if errors.Is(err, vehicleservice.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if _, err := s.userService.GetUser(ctx, *tripModify.DriverID); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}

	if tripModify.Status == nil {
		inProgress := entities.TripInProgress
		tripModify.Status = &inProgress
	}

	tripEntity, err := s.repository.Create(ctx, tripModify)
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return tripEntity, nil
}

func (s *Trip) UpdateTrip(ctx context.Context, caller entities.Caller, tripModify entities.TripModify) (*entities.Trip, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpTripUpdate); err != nil {
		return nil, err
	}

	if tripModify.ID == nil {
		return nil, ErrInvalidTripID
	}
	if tripModify.Status != nil && !isValidStatus(tripModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if tripModify.EndMileage != nil && *tripModify.EndMileage < 0 {
		return nil, ErrInvalidMileage
	}

	tripEntity, err := s.repository.Update(ctx, tripModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return tripEntity, nil
}

func (s *Trip) GetTrips(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error) {
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	trips, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}

	return trips, nil
}

func isValidStatus(status string) bool {
	switch status {
	case "in_progress", "completed":
		return true
	default:
		return false
	}
}
