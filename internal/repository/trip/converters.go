package trip

import (
	"fleet/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:            t.ID,
		VehicleID:     t.VehicleID,
		DriverID:      t.DriverID,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		StartMileage:  t.StartMileage,
		EndMileage:    t.EndMileage,
		StartLocation: t.StartLocation,
		EndLocation:   t.EndLocation,
		Purpose:       t.Purpose,
		Status:        entities.TripStatusType(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromDomainModify(tripModify *entities.TripModify) *TripModifyDB {
	if tripModify == nil {
		return nil
	}
	tripDB := &TripModifyDB{
		ID:            tripModify.ID,
		VehicleID:     tripModify.VehicleID,
		DriverID:      tripModify.DriverID,
		StartDate:     tripModify.StartDate,
		EndDate:       tripModify.EndDate,
		StartMileage:  tripModify.StartMileage,
		EndMileage:    tripModify.EndMileage,
		StartLocation: tripModify.StartLocation,
		EndLocation:   tripModify.EndLocation,
		Purpose:       tripModify.Purpose,
	}

	if tripModify.Status != nil {
		status := tripModify.Status.String()
		tripDB.Status = &status
	}

	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}
