package maintenance_put

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
	"fleet/internal/service/maintenance"
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

	var maintenanceUpdateDTO dto.MaintenanceUpdate
	err = json.NewDecoder(r.Body).Decode(&maintenanceUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	maintenanceModifyEntity := entities.MaintenanceModify{
		ID:          &id,
		Description: maintenanceUpdateDTO.Description,
		Cost:        maintenanceUpdateDTO.Cost,
		Mileage:     maintenanceUpdateDTO.Mileage,
		ServiceDate: maintenanceUpdateDTO.ServiceDate,
		ServicedBy:  maintenanceUpdateDTO.ServicedBy,
		Notes:       maintenanceUpdateDTO.Notes,
	}
	if maintenanceUpdateDTO.Type != nil {
		maintenanceType := entities.MaintenanceType(*maintenanceUpdateDTO.Type)
		maintenanceModifyEntity.Type = &maintenanceType
	}

	recordEntity, err := h.service.UpdateRecord(r.Context(), caller, maintenanceModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMissingRequiredFields),
			errors.Is(err, maintenance.ErrInvalidRecordID),
			errors.Is(err, maintenance.ErrInvalidType),
			errors.Is(err, maintenance.ErrInvalidCost),
			errors.Is(err, maintenance.ErrInvalidMileage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, authz.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, maintenance.ErrRecordNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	recordDTO := dto.MaintenanceRecord{
		ID:          recordEntity.ID,
		VehicleID:   recordEntity.VehicleID,
		Type:        recordEntity.Type.String(),
		Description: recordEntity.Description,
		Cost:        recordEntity.Cost,
		Mileage:     recordEntity.Mileage,
		ServiceDate: recordEntity.ServiceDate,
		ServicedBy:  recordEntity.ServicedBy,
		Notes:       recordEntity.Notes,
		CreatedAt:   recordEntity.CreatedAt,
		UpdatedAt:   recordEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(recordDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
