package entities

import "time"

type Trip struct {
	ID            int64
	VehicleID     int64
	DriverID      int64
	StartDate     time.Time
	EndDate       *time.Time
	StartMileage  int64
	EndMileage    *int64
	StartLocation string
	EndLocation   *string
	Purpose       string
	Status        TripStatusType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TripStatusType string

const (
	TripInProgress TripStatusType = "in_progress"
	TripCompleted  TripStatusType = "completed"
)

func (t TripStatusType) String() string {
	return string(t)
}

type TripModify struct {
	ID            *int64
	VehicleID     *int64
	DriverID      *int64
	StartDate     *time.Time
	EndDate       *time.Time
	StartMileage  *int64
	EndMileage    *int64
	StartLocation *string
	EndLocation   *string
	Purpose       *string
	Status        *TripStatusType
}

type TripFilter struct {
	VehicleID *int64
	DriverID  *int64
	Status    *TripStatusType
}
