package assignment

import "time"

type AssignmentDB struct {
	ID        int64
	VehicleID int64
	UserID    int64
	StartDate time.Time
	EndDate   *time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssignmentDetailsDB строка JOIN-а назначения с урезанными проекциями
// машины и водителя.
type AssignmentDetailsDB struct {
	AssignmentDB

	VehicleMake         string
	VehicleModel        string
	VehicleYear         int
	VehicleLicensePlate string
	VehicleStatus       string

	UserName  string
	UserEmail string
	UserRole  string
}
