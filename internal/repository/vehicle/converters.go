package vehicle

import (
	"fleet/internal/entities"
)

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}

	return &entities.Vehicle{
		ID:              v.ID,
		Name:            v.Name,
		Make:            v.Make,
		Model:           v.Model,
		Year:            v.Year,
		LicensePlate:    v.LicensePlate,
		VIN:             v.VIN,
		Status:          entities.VehicleStatusType(v.Status),
		FuelType:        v.FuelType,
		Mileage:         v.Mileage,
		LastServiceDate: v.LastServiceDate,
		NextServiceDate: v.NextServiceDate,
		PurchaseDate:    v.PurchaseDate,
		PurchasePrice:   v.PurchasePrice,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}
	vehicleDB := &VehicleModifyDB{
		ID:              vehicleModify.ID,
		Name:            vehicleModify.Name,
		Make:            vehicleModify.Make,
		Model:           vehicleModify.Model,
		Year:            vehicleModify.Year,
		LicensePlate:    vehicleModify.LicensePlate,
		VIN:             vehicleModify.VIN,
		FuelType:        vehicleModify.FuelType,
		Mileage:         vehicleModify.Mileage,
		LastServiceDate: vehicleModify.LastServiceDate,
		NextServiceDate: vehicleModify.NextServiceDate,
		PurchaseDate:    vehicleModify.PurchaseDate,
		PurchasePrice:   vehicleModify.PurchasePrice,
	}

	if vehicleModify.Status != nil {
		status := vehicleModify.Status.String()
		vehicleDB.Status = &status
	}

	return vehicleDB
}

func ToDomainList(vehiclesDB []VehicleDB) []entities.Vehicle {
	if len(vehiclesDB) == 0 {
		return []entities.Vehicle{}
	}

	result := make([]entities.Vehicle, len(vehiclesDB))
	for i, vehicleDB := range vehiclesDB {
		result[i] = *ToDomain(&vehicleDB)
	}
	return result
}
