package maintenance_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/authz"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/service/maintenance"
	"fleet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var maintenanceCreateDTO dto.MaintenanceCreate
	err := json.NewDecoder(r.Body).Decode(&maintenanceCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	maintenanceType := entities.MaintenanceType(maintenanceCreateDTO.Type)
	maintenanceModifyEntity := entities.MaintenanceModify{
		VehicleID:   &maintenanceCreateDTO.VehicleID,
		Type:        &maintenanceType,
		Description: &maintenanceCreateDTO.Description,
		Cost:        &maintenanceCreateDTO.Cost,
		Mileage:     maintenanceCreateDTO.Mileage,
		ServiceDate: &maintenanceCreateDTO.ServiceDate,
		ServicedBy:  maintenanceCreateDTO.ServicedBy,
		Notes:       maintenanceCreateDTO.Notes,
	}

	recordEntity, err := h.service.CreateRecord(r.Context(), caller, maintenanceModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMissingRequiredFields),
			errors.Is(err, maintenance.ErrInvalidType),
			errors.Is(err, maintenance.ErrInvalidCost),
			errors.Is(err, maintenance.ErrInvalidMileage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, maintenance.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	recordDTO := dto.MaintenanceRecord{
		ID:          recordEntity.ID,
		VehicleID:   recordEntity.VehicleID,
		Type:        recordEntity.Type.String(),
		Description: recordEntity.Description,
		Cost:        recordEntity.Cost,
		Mileage:     recordEntity.Mileage,
		ServiceDate: recordEntity.ServiceDate,
		ServicedBy:  recordEntity.ServicedBy,
		Notes:       recordEntity.Notes,
		CreatedAt:   recordEntity.CreatedAt,
		UpdatedAt:   recordEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(recordDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
