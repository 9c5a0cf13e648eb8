package vehicle_mileage_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	vehicleservice "fleet/internal/service/vehicle"
	"fleet/pkg/logger"
)

type mileageChangedEvent struct {
	VehicleID int64 `json:"vehicleId"`
	Mileage   int64 `json:"mileage"`
}

type Handler struct {
	vehicleService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, vehicleService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		vehicleService:           vehicleService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("vehicle.mileage.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("vehicle.mileage.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event mileageChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("vehicle.mileage.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("vehicle", event.VehicleID),
		logger.NewField("mileage", event.Mileage),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("vehicle.mileage.changed processing")

	vehicle, err := h.vehicleService.ProcessMileageUpdate(ctx, event.VehicleID, event.Mileage)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("vehicle.mileage.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, vehicleservice.ErrVehicleNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("vehicle.mileage.changed handler unknown vehicle")

		case errors.Is(err, vehicleservice.ErrInvalidMileage):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("vehicle.mileage.changed handler invalid mileage")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("vehicle.mileage.changed handler failed to process vehicle")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("vehicle", vehicle.ID),
		logger.NewField("event_mileage", event.Mileage),
		logger.NewField("current_mileage", vehicle.Mileage),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("vehicle.mileage.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
