package entities

import "time"

type MaintenanceRecord struct {
	ID          int64
	VehicleID   int64
	Type        MaintenanceType
	Description string
	Cost        float64
	Mileage     int64
	ServiceDate time.Time
	ServicedBy  string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MaintenanceType string

const (
	MaintenanceRoutine    MaintenanceType = "routine"
	MaintenanceRepair     MaintenanceType = "repair"
	MaintenanceInspection MaintenanceType = "inspection"
)

func (t MaintenanceType) String() string {
	return string(t)
}

type MaintenanceModify struct {
	ID          *int64
	VehicleID   *int64
	Type        *MaintenanceType
	Description *string
	Cost        *float64
	Mileage     *int64
	ServiceDate *time.Time
	ServicedBy  *string
	Notes       *string
}
