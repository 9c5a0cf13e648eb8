package assignment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/authz"
	"fleet/internal/pkg/middlewares/auth"
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
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var assignmentCreateDTO dto.AssignmentCreate
	err := json.NewDecoder(r.Body).Decode(&assignmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentModifyEntity := entities.AssignmentModify{
		VehicleID: assignmentCreateDTO.VehicleID,
		UserID:    assignmentCreateDTO.UserID,
		StartDate: assignmentCreateDTO.StartDate,
	}
	if assignmentCreateDTO.EndDate != nil {
		assignmentModifyEntity.EndDate = &entities.NullTime{
			Time:  *assignmentCreateDTO.EndDate,
			Valid: true,
		}
	}

	assignmentEntity, err := h.service.CreateAssignment(r.Context(), caller, assignmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrMissingRequiredFields),
			errors.Is(err, assignment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrVehicleNotFound),
			errors.Is(err, assignment.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrVehicleAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrVehicleNotAvailable):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(assignmentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
