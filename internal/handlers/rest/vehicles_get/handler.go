package vehicles_get

import (
	"encoding/json"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
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
	vehicleEntities, err := h.service.GetVehicles(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	vehicleDTOs := make([]dto.Vehicle, 0, len(vehicleEntities))
	for _, vehicleEntity := range vehicleEntities {
		vehicleDTOs = append(vehicleDTOs, toDTO(&vehicleEntity))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(vehicleEntity *entities.Vehicle) dto.Vehicle {
	return dto.Vehicle{
		ID:              vehicleEntity.ID,
		Name:            vehicleEntity.Name,
		Make:            vehicleEntity.Make,
		Model:           vehicleEntity.Model,
		Year:            vehicleEntity.Year,
		LicensePlate:    vehicleEntity.LicensePlate,
		VIN:             vehicleEntity.VIN,
		Status:          vehicleEntity.Status.String(),
		FuelType:        vehicleEntity.FuelType,
		Mileage:         vehicleEntity.Mileage,
		LastServiceDate: vehicleEntity.LastServiceDate,
		NextServiceDate: vehicleEntity.NextServiceDate,
		PurchaseDate:    vehicleEntity.PurchaseDate,
		PurchasePrice:   vehicleEntity.PurchasePrice,
		CreatedAt:       vehicleEntity.CreatedAt,
		UpdatedAt:       vehicleEntity.UpdatedAt,
	}
}
