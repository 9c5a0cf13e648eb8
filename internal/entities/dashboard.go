package entities

type DashboardStats struct {
	TotalVehicles          int64
	ActiveVehicles         int64
	VehiclesInMaintenance  int64
	TotalDrivers           int64
	ActiveTrips            int64
	UpcomingMaintenance    int64
	TotalMileage           int64
	MonthlyMaintenanceCost float64
}
