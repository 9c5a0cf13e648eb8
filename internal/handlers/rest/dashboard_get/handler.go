package dashboard_get

import (
	"encoding/json"
	"net/http"

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
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	statsDTO := dto.DashboardStats{
		TotalVehicles:          stats.TotalVehicles,
		ActiveVehicles:         stats.ActiveVehicles,
		VehiclesInMaintenance:  stats.VehiclesInMaintenance,
		TotalDrivers:           stats.TotalDrivers,
		ActiveTrips:            stats.ActiveTrips,
		UpcomingMaintenance:    stats.UpcomingMaintenance,
		TotalMileage:           stats.TotalMileage,
		MonthlyMaintenanceCost: stats.MonthlyMaintenanceCost,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(statsDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
