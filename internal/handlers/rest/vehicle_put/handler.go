package vehicle_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/authz"
	"fleet/internal/pkg/middlewares/auth"
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
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var vehicleUpdateDTO dto.VehicleUpdate
	err := json.NewDecoder(r.Body).Decode(&vehicleUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleModifyEntity := entities.VehicleModify{
		ID:              &vehicleUpdateDTO.ID,
		Name:            vehicleUpdateDTO.Name,
		Make:            vehicleUpdateDTO.Make,
		Model:           vehicleUpdateDTO.Model,
		Year:            vehicleUpdateDTO.Year,
		LicensePlate:    vehicleUpdateDTO.LicensePlate,
		VIN:             vehicleUpdateDTO.VIN,
		FuelType:        vehicleUpdateDTO.FuelType,
		Mileage:         vehicleUpdateDTO.Mileage,
		LastServiceDate: vehicleUpdateDTO.LastServiceDate,
		NextServiceDate: vehicleUpdateDTO.NextServiceDate,
		PurchaseDate:    vehicleUpdateDTO.PurchaseDate,
		PurchasePrice:   vehicleUpdateDTO.PurchasePrice,
	}
	if vehicleUpdateDTO.Status != nil {
		status := entities.VehicleStatusType(*vehicleUpdateDTO.Status)
		vehicleModifyEntity.Status = &status
	}

	vehicleEntity, err := h.service.UpdateVehicle(r.Context(), caller, vehicleModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidVehicleID),
			errors.Is(err, vehicle.ErrInvalidName),
			errors.Is(err, vehicle.ErrInvalidVIN),
			errors.Is(err, vehicle.ErrInvalidYear),
			errors.Is(err, vehicle.ErrInvalidStatus),
			errors.Is(err, vehicle.ErrInvalidMileage),
			errors.Is(err, vehicle.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, vehicle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	vehicleDTO := dto.Vehicle{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
