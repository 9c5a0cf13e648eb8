package trips_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/service/trip"
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
	var filter entities.TripFilter

	query := r.URL.Query()
	if raw := query.Get("vehicleId"); raw != "" {
		vehicleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.VehicleID = &vehicleID
	}
	if raw := query.Get("driverId"); raw != "" {
		driverID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.DriverID = &driverID
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.TripStatusType(raw)
		filter.Status = &status
	}

	tripEntities, err := h.service.GetTrips(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	tripDTOs := make([]dto.Trip, 0, len(tripEntities))
	for _, tripEntity := range tripEntities {
		tripDTOs = append(tripDTOs, toDTO(&tripEntity))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(tripDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(tripEntity *entities.Trip) dto.Trip {
	return dto.Trip{
		ID:            tripEntity.ID,
		VehicleID:     tripEntity.VehicleID,
		DriverID:      tripEntity.DriverID,
		StartDate:     tripEntity.StartDate,
		EndDate:       tripEntity.EndDate,
		StartMileage:  tripEntity.StartMileage,
		EndMileage:    tripEntity.EndMileage,
		StartLocation: tripEntity.StartLocation,
		EndLocation:   tripEntity.EndLocation,
		Purpose:       tripEntity.Purpose,
		Status:        tripEntity.Status.String(),
		CreatedAt:     tripEntity.CreatedAt,
		UpdatedAt:     tripEntity.UpdatedAt,
	}
}
