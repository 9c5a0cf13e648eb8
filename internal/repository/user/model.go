package user

import "time"

// UserDB не содержит password_hash: хэш пишется при создании/обновлении,
// но никогда не читается обратно в доменную модель.
type UserDB struct {
	ID        int64
	Name      *string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModifyDB struct {
	ID           *int64
	Name         *string
	Email        *string
	Role         *string
	PasswordHash *string
}
