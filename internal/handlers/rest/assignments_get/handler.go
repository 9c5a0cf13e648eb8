package assignments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/service/assignment"
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
	var filter entities.AssignmentFilter

	query := r.URL.Query()
	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.UserID = &userID
	}
	if raw := query.Get("vehicleId"); raw != "" {
		vehicleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.VehicleID = &vehicleID
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.AssignmentStatusType(raw)
		filter.Status = &status
	}

	assignmentEntities, err := h.service.GetAssignments(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	assignmentDTOs := make([]dto.Assignment, 0, len(assignmentEntities))
	for _, assignmentEntity := range assignmentEntities {
		assignmentDTOs = append(assignmentDTOs, toDTO(&assignmentEntity))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(assignmentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(assignmentEntity *entities.AssignmentDetails) dto.Assignment {
	return dto.Assignment{
		ID:        assignmentEntity.ID,
		VehicleID: assignmentEntity.VehicleID,
		UserID:    assignmentEntity.UserID,
		StartDate: assignmentEntity.StartDate,
		EndDate:   assignmentEntity.EndDate,
		Status:    assignmentEntity.Status.String(),
		CreatedAt: assignmentEntity.CreatedAt,
		UpdatedAt: assignmentEntity.UpdatedAt,
		Vehicle: dto.VehicleRef{
			ID:           assignmentEntity.Vehicle.ID,
			Make:         assignmentEntity.Vehicle.Make,
			Model:        assignmentEntity.Vehicle.Model,
			Year:         assignmentEntity.Vehicle.Year,
			LicensePlate: assignmentEntity.Vehicle.LicensePlate,
			Status:       assignmentEntity.Vehicle.Status.String(),
		},
		User: dto.UserRef{
			ID:    assignmentEntity.User.ID,
			Name:  assignmentEntity.User.Name,
			Email: assignmentEntity.User.Email,
			Role:  assignmentEntity.User.Role.String(),
		},
	}
}
