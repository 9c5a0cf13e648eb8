package vehicle_post

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

	var vehicleCreateDTO dto.VehicleCreate
	err := json.NewDecoder(r.Body).Decode(&vehicleCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleModifyEntity := entities.VehicleModify{
		Name:            &vehicleCreateDTO.Name,
		Make:            &vehicleCreateDTO.Make,
		Model:           &vehicleCreateDTO.Model,
		Year:            &vehicleCreateDTO.Year,
		LicensePlate:    &vehicleCreateDTO.LicensePlate,
		VIN:             &vehicleCreateDTO.VIN,
		FuelType:        vehicleCreateDTO.FuelType,
		Mileage:         vehicleCreateDTO.Mileage,
		LastServiceDate: vehicleCreateDTO.LastServiceDate,
		NextServiceDate: vehicleCreateDTO.NextServiceDate,
		PurchaseDate:    &vehicleCreateDTO.PurchaseDate,
		PurchasePrice:   vehicleCreateDTO.PurchasePrice,
	}
	status := entities.DefaultVehicleStatus
	if vehicleCreateDTO.Status != nil {
		status = entities.VehicleStatusType(*vehicleCreateDTO.Status)
	}
	vehicleModifyEntity.Status = &status

	id, err := h.service.CreateVehicle(r.Context(), caller, vehicleModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidName),
			errors.Is(err, vehicle.ErrInvalidVIN),
			errors.Is(err, vehicle.ErrInvalidYear),
			errors.Is(err, vehicle.ErrInvalidStatus),
			errors.Is(err, vehicle.ErrInvalidMileage),
			errors.Is(err, vehicle.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, vehicle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.VehicleCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
