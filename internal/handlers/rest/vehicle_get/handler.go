package vehicle_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/service/vehicle"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleEntity, err := h.service.GetVehicle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, vehicle.ErrInvalidVehicleID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	vehicleDTO := toDTO(vehicleEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTO)
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
