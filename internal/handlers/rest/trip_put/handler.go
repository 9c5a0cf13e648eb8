package trip_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/authz"
	"fleet/internal/pkg/middlewares/auth"
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
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var tripUpdateDTO dto.TripUpdate
	err := json.NewDecoder(r.Body).Decode(&tripUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tripModifyEntity := entities.TripModify{
		ID:          &tripUpdateDTO.ID,
		EndDate:     tripUpdateDTO.EndDate,
		EndMileage:  tripUpdateDTO.EndMileage,
		EndLocation: tripUpdateDTO.EndLocation,
		Purpose:     tripUpdateDTO.Purpose,
	}
	if tripUpdateDTO.Status != nil {
		status := entities.TripStatusType(*tripUpdateDTO.Status)
		tripModifyEntity.Status = &status
	}

	tripEntity, err := h.service.UpdateTrip(r.Context(), caller, tripModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrInvalidTripID),
			errors.Is(err, trip.ErrInvalidStatus),
			errors.Is(err, trip.ErrInvalidMileage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	tripDTO := dto.Trip{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(tripDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
