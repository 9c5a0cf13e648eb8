package trip

import "time"

type TripDB struct {
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
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TripModifyDB struct {
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
	Status        *string
}
