package user

import (
	"context"
	"fmt"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type User struct {
	repository Repository
	guard      RoleGuard
	txManager  TxManager
}

func New(repository Repository, guard RoleGuard, txManager TxManager) *User {
	return &User{
		repository: repository,
		guard:      guard,
		txManager:  txManager,
	}
}

func (s *User) CreateUser(ctx context.Context, caller entities.Caller, userModify entities.UserModify) (int64, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpUserCreate); err != nil {
		return 0, err
	}

	if userModify.Email == nil ||
		userModify.Role == nil ||
		userModify.PasswordHash == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidEmail(*userModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidRole(userModify.Role.String()) {
		return 0, ErrInvalidRole
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (s *User) UpdateUser(ctx context.Context, caller entities.Caller, userModify entities.UserModify) (*entities.User, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpUserUpdate); err != nil {
		return nil, err
	}

	if userModify.ID == nil {
		return nil, ErrInvalidUserID
	}

	if userModify.Name == nil &&
		userModify.Email == nil &&
		userModify.Role == nil &&
		userModify.PasswordHash == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if userModify.Email != nil && !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if userModify.Role != nil && !isValidRole(userModify.Role.String()) {
		return nil, ErrInvalidRole
	}

	userEntity, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userEntity, nil
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userEntity, nil
}

func (s *User) GetUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// DeleteUser удаляет пользователя только если за ним не числится ни одного
// активного назначения и ни одной незавершенной поездки. Каскадного
// переназначения нет, поэтому удаление блокируется, а не осиротляет записи.
func (s *User) DeleteUser(ctx context.Context, caller entities.Caller, id int64) (int64, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpUserDelete); err != nil {
		return 0, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetByID(ctx, id); err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		activeAssignments, inProgressTrips, err := s.repository.CountBlockingRelations(ctx, id)
		if err != nil {
			return fmt.Errorf("count blocking relations: %w", err)
		}

		if activeAssignments > 0 {
			return ErrUserHasActiveAssignments
		}
		if inProgressTrips > 0 {
			return ErrUserHasActiveTrips
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
