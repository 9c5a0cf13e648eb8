package assignment

import (
	"fleet/internal/entities"
)

func ToDomain(a *AssignmentDB) *entities.DriverAssignment {
	if a == nil {
		return nil
	}

	return &entities.DriverAssignment{
		ID:        a.ID,
		VehicleID: a.VehicleID,
		UserID:    a.UserID,
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		Status:    entities.AssignmentStatusType(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToDetailsDomain(d *AssignmentDetailsDB) *entities.AssignmentDetails {
	if d == nil {
		return nil
	}

	return &entities.AssignmentDetails{
		DriverAssignment: *ToDomain(&d.AssignmentDB),
		Vehicle: entities.VehicleRef{
			ID:           d.VehicleID,
			Make:         d.VehicleMake,
			Model:        d.VehicleModel,
			Year:         d.VehicleYear,
			LicensePlate: d.VehicleLicensePlate,
			Status:       entities.VehicleStatusType(d.VehicleStatus),
		},
		User: entities.UserRef{
			ID:    d.UserID,
			Name:  d.UserName,
			Email: d.UserEmail,
			Role:  entities.RoleType(d.UserRole),
		},
	}
}

func ToDetailsDomainList(detailsDB []AssignmentDetailsDB) []entities.AssignmentDetails {
	if len(detailsDB) == 0 {
		return []entities.AssignmentDetails{}
	}

	result := make([]entities.AssignmentDetails, len(detailsDB))
	for i, d := range detailsDB {
		result[i] = *ToDetailsDomain(&d)
	}
	return result
}
