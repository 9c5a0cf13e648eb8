package assignment_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.GetAssignment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrInvalidAssignmentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(assignmentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
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
