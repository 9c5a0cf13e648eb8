package maintenance

import "time"

type MaintenanceRecordDB struct {
	ID          int64
	VehicleID   int64
	Type        string
	Description string
	Cost        float64
	Mileage     int64
	ServiceDate time.Time
	ServicedBy  string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MaintenanceModifyDB struct {
	ID          *int64
	VehicleID   *int64
	Type        *string
	Description *string
	Cost        *float64
	Mileage     *int64
	ServiceDate *time.Time
	ServicedBy  *string
	Notes       *string
}
