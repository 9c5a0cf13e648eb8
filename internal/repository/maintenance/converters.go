package maintenance

import (
	"fleet/internal/entities"
)

func ToDomain(m *MaintenanceRecordDB) *entities.MaintenanceRecord {
	if m == nil {
		return nil
	}

	return &entities.MaintenanceRecord{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		Type:        entities.MaintenanceType(m.Type),
		Description: m.Description,
		Cost:        m.Cost,
		Mileage:     m.Mileage,
		ServiceDate: m.ServiceDate,
		ServicedBy:  m.ServicedBy,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromDomainModify(maintenanceModify *entities.MaintenanceModify) *MaintenanceModifyDB {
	if maintenanceModify == nil {
		return nil
	}
	maintenanceDB := &MaintenanceModifyDB{
		ID:          maintenanceModify.ID,
		VehicleID:   maintenanceModify.VehicleID,
		Description: maintenanceModify.Description,
		Cost:        maintenanceModify.Cost,
		Mileage:     maintenanceModify.Mileage,
		ServiceDate: maintenanceModify.ServiceDate,
		ServicedBy:  maintenanceModify.ServicedBy,
		Notes:       maintenanceModify.Notes,
	}

	if maintenanceModify.Type != nil {
		maintenanceType := maintenanceModify.Type.String()
		maintenanceDB.Type = &maintenanceType
	}

	return maintenanceDB
}

func ToDomainList(recordsDB []MaintenanceRecordDB) []entities.MaintenanceRecord {
	if len(recordsDB) == 0 {
		return []entities.MaintenanceRecord{}
	}

	result := make([]entities.MaintenanceRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = *ToDomain(&recordDB)
	}
	return result
}
