package maintenance_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fleet/internal/generated/dto"
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
	var vehicleID *int64
	if raw := r.URL.Query().Get("vehicleId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		vehicleID = &id
	}

	recordEntities, err := h.service.GetRecords(r.Context(), vehicleID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	recordDTOs := make([]dto.MaintenanceRecord, 0, len(recordEntities))
	for _, recordEntity := range recordEntities {
		recordDTOs = append(recordDTOs, dto.MaintenanceRecord{
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
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(recordDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
