package entities

import "time"

type DriverAssignment struct {
	ID        int64
	VehicleID int64
	UserID    int64
	StartDate time.Time
	EndDate   *time.Time
	Status    AssignmentStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AssignmentStatusType string

const (
	AssignmentActive    AssignmentStatusType = "active"
	AssignmentCompleted AssignmentStatusType = "completed"
)

func (t AssignmentStatusType) String() string {
	return string(t)
}

// NullTime различает "поле не передано" (nil *NullTime) от "передан null"
// (Valid == false) и от "передано значение" (Valid == true). Для end_date
// это семантически разные случаи.
type NullTime struct {
	Time  time.Time
	Valid bool
}

type AssignmentModify struct {
	ID        *int64
	VehicleID *int64
	UserID    *int64
	StartDate *time.Time
	EndDate   *NullTime
	Status    *AssignmentStatusType
}

// VehicleRef урезанная проекция Vehicle для ответов по назначениям.
type VehicleRef struct {
	ID           int64
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Status       VehicleStatusType
}

// UserRef урезанная проекция User, без каких-либо учетных данных.
type UserRef struct {
	ID    int64
	Name  string
	Email string
	Role  RoleType
}

type AssignmentDetails struct {
	DriverAssignment
	Vehicle VehicleRef
	User    UserRef
}

type AssignmentFilter struct {
	UserID    *int64
	VehicleID *int64
	Status    *AssignmentStatusType
}
