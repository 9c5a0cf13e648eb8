package entities

import "time"

type User struct {
	ID        int64
	Name      string
	Email     string
	Role      RoleType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleManager RoleType = "manager"
	RoleUser    RoleType = "user"
)

const DefaultRole = RoleUser

func (r RoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID           *int64
	Name         *string
	Email        *string
	Role         *RoleType
	PasswordHash *string
}

// Caller идентифицирует инициатора запроса. Заполняется auth middleware
// и передается в сервисы явным аргументом, а не через глобальное состояние.
type Caller struct {
	UserID int64
	Role   RoleType
}
