package assignment

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Assignment struct {
	repository Repository
	guard      RoleGuard
	clock      clockwork.Clock
	txManager  TxManager
}

func New(repository Repository, guard RoleGuard, clock clockwork.Clock, txManager TxManager) *Assignment {
	return &Assignment{
		repository: repository,
		guard:      guard,
		clock:      clock,
		txManager:  txManager,
	}
}

// CreateAssignment закрепляет водителя за машиной. Проверки выполняются
// строго по порядку: машина существует -> машина в статусе active ->
// водитель существует -> у машины нет другого активного назначения.
// Вся последовательность проверка+вставка выполняется в serializable
// транзакции, гонку двух одновременных созданий дополнительно закрывает
// частичный уникальный индекс по (vehicle_id) WHERE status='active'.
func (s *Assignment) CreateAssignment(ctx context.Context, caller entities.Caller, assignmentModify entities.AssignmentModify) (*entities.AssignmentDetails, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpAssignmentCreate); err != nil {
		return nil, err
	}

	if assignmentModify.VehicleID == nil ||
		assignmentModify.UserID == nil ||
		assignmentModify.StartDate == nil {
		return nil, ErrMissingRequiredFields
	}

	details := entities.AssignmentDetails{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		vehicle, err := s.repository.GetVehicleForAssignment(ctx, *assignmentModify.VehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		if vehicle.Status != entities.VehicleActive {
			return fmt.Errorf("vehicle status %q: %w", vehicle.Status, ErrVehicleNotAvailable)
		}

		user, err := s.repository.GetUserForAssignment(ctx, *assignmentModify.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		activeCount, err := s.repository.CountActiveByVehicle(ctx, *assignmentModify.VehicleID)
		if err != nil {
			return fmt.Errorf("count active assignments: %w", err)
		}
		if activeCount > 0 {
			return ErrVehicleAlreadyAssigned
		}

		activeStatus := entities.AssignmentActive
		assignmentModify.Status = &activeStatus

		created, err := s.repository.Create(ctx, assignmentModify)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		details = entities.AssignmentDetails{
			DriverAssignment: *created,
			Vehicle: entities.VehicleRef{
				ID:           vehicle.ID,
				Make:         vehicle.Make,
				Model:        vehicle.Model,
				Year:         vehicle.Year,
				LicensePlate: vehicle.LicensePlate,
				Status:       vehicle.Status,
			},
			User: *user,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateAssignment применяет частичный патч {status?, end_date?}.
// Пустой патч легален и просто возвращает текущую запись. Если статус
// переводится в completed, end_date не передан и у записи его еще нет,
// end_date проставляется серверным временем в момент коммита.
func (s *Assignment) UpdateAssignment(ctx context.Context, caller entities.Caller, assignmentModify entities.AssignmentModify) (*entities.AssignmentDetails, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpAssignmentUpdate); err != nil {
		return nil, err
	}

	if assignmentModify.ID == nil {
		return nil, ErrInvalidAssignmentID
	}
	if assignmentModify.Status != nil && !isValidAssignmentStatus(assignmentModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	details := entities.AssignmentDetails{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *assignmentModify.ID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		if assignmentModify.Status == nil && assignmentModify.EndDate == nil {
			currentDetails, err := s.repository.GetDetails(ctx, current.ID)
			if err != nil {
				return fmt.Errorf("get assignment details: %w", err)
			}
			details = *currentDetails
			return nil
		}

		if assignmentModify.Status != nil &&
			*assignmentModify.Status == entities.AssignmentCompleted &&
			assignmentModify.EndDate == nil &&
			current.EndDate == nil {
			assignmentModify.EndDate = &entities.NullTime{
				Time:  s.clock.Now().UTC(),
				Valid: true,
			}
		}

		updated, err := s.repository.Update(ctx, assignmentModify)
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		updatedDetails, err := s.repository.GetDetails(ctx, updated.ID)
		if err != nil {
			return fmt.Errorf("get assignment details: %w", err)
		}
		details = *updatedDetails
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// DeleteAssignment удаляет назначение безусловно, статус не проверяется.
func (s *Assignment) DeleteAssignment(ctx context.Context, caller entities.Caller, id int64) (int64, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpAssignmentDelete); err != nil {
		return 0, err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete assignment: %w", err)
	}
	return id, nil
}

func (s *Assignment) GetAssignment(ctx context.Context, id int64) (*entities.AssignmentDetails, error) {
	details, err := s.repository.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return details, nil
}

func (s *Assignment) GetAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error) {
	if filter.Status != nil && !isValidAssignmentStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	assignments, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	return assignments, nil
}
