package assignment_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignmentUpdateDTO dto.AssignmentUpdate
	err = json.NewDecoder(r.Body).Decode(&assignmentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentModifyEntity := entities.AssignmentModify{
		ID:        &id,
		VehicleID: assignmentUpdateDTO.VehicleID,
		UserID:    assignmentUpdateDTO.UserID,
		StartDate: assignmentUpdateDTO.StartDate,
	}
	if assignmentUpdateDTO.EndDate.Set {
		assignmentModifyEntity.EndDate = &entities.NullTime{
			Time:  assignmentUpdateDTO.EndDate.Value,
			Valid: assignmentUpdateDTO.EndDate.Valid,
		}
	}
	if assignmentUpdateDTO.Status != nil {
		status := entities.AssignmentStatusType(*assignmentUpdateDTO.Status)
		assignmentModifyEntity.Status = &status
	}

	assignmentEntity, err := h.service.UpdateAssignment(r.Context(), caller, assignmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidAssignmentID),
			errors.Is(err, assignment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
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

// toDTO собирает ответ обновления: вложенные машина и пользователь
// отдаются без status и role, эти поля есть только в ответе создания.
func toDTO(assignmentEntity *entities.AssignmentDetails) dto.AssignmentUpdateResponse {
	return dto.AssignmentUpdateResponse{
		ID:        assignmentEntity.ID,
		VehicleID: assignmentEntity.VehicleID,
		UserID:    assignmentEntity.UserID,
		StartDate: assignmentEntity.StartDate,
		EndDate:   assignmentEntity.EndDate,
		Status:    assignmentEntity.Status.String(),
		CreatedAt: assignmentEntity.CreatedAt,
		UpdatedAt: assignmentEntity.UpdatedAt,
		Vehicle: dto.VehicleRefBrief{
			ID:           assignmentEntity.Vehicle.ID,
			Make:         assignmentEntity.Vehicle.Make,
			Model:        assignmentEntity.Vehicle.Model,
			Year:         assignmentEntity.Vehicle.Year,
			LicensePlate: assignmentEntity.Vehicle.LicensePlate,
		},
		User: dto.UserRefBrief{
			ID:    assignmentEntity.User.ID,
			Name:  assignmentEntity.User.Name,
			Email: assignmentEntity.User.Email,
		},
	}
}
