package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Name,
		userModifyModel.Email,
		userModifyModel.Role,
		userModifyModel.PasswordHash,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, user.ErrConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опционнные поля
	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Email != nil {
		builder = builder.Set("email", userModifyModel.Email)
	}
	if userModifyModel.Role != nil {
		builder = builder.Set("role", userModifyModel.Role)
	}
	if userModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", userModifyModel.PasswordHash)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING id, name, email, role, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userDB UserDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.Role,
			&userDB.CreatedAt,
			&userDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}

		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, name, email, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.Role,
			&userDB.CreatedAt,
			&userDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `
	SELECT id, name, email, role, created_at, updated_at
	FROM users
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userDB UserDB
		err := rows.Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.Role,
			&userDB.CreatedAt,
			&userDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		userModels = append(userModels, userDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected user repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *Repository) CountBlockingRelations(ctx context.Context, id int64) (activeAssignments, inProgressTrips int64, err error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM driver_assignments WHERE user_id = $1 AND status = 'active'),
            (SELECT COUNT(*) FROM trips WHERE driver_id = $1 AND status = 'in_progress')
	`

	err = r.querier.QueryRow(ctx, query, id).Scan(&activeAssignments, &inProgressTrips)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected user repository count blocking relations error: %w", err)
	}
	return activeAssignments, inProgressTrips, nil
}
