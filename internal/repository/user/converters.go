package user

import (
	"fleet/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	name := ""
	if u.Name != nil {
		name = *u.Name
	}

	return &entities.User{
		ID:        u.ID,
		Name:      name,
		Email:     u.Email,
		Role:      entities.RoleType(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{
		ID:           userModify.ID,
		Name:         userModify.Name,
		Email:        userModify.Email,
		PasswordHash: userModify.PasswordHash,
	}

	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
