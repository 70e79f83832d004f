package usecase

import (
	"context"
	"strings"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

type LoginInput struct {
	Role     entity.UserRole `json:"role"`
	Name     string          `json:"name"`
	Password string          `json:"password"`
}

// LoginUseCase matches the submitted credentials against the user set. The
// admin logs in by password alone; managers and operators by
// case-insensitive name plus password within their role.
type LoginUseCase struct {
	Users UserRepositoryInterface
}

func NewLoginUseCase(users UserRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Users: users}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*entity.User, error) {
	users, err := uc.Users.All(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "USER_FETCH_FAILED",
			Message: "failed to fetch users: " + err.Error(),
		}
	}

	if input.Role == entity.RoleAdmin {
		for _, u := range users {
			if u.Role == entity.RoleAdmin && u.Password == input.Password {
				return &u, nil
			}
		}
		return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "admin password is incorrect"}
	}

	name := strings.TrimSpace(input.Name)
	for _, u := range users {
		if u.Role != input.Role || !strings.EqualFold(u.Name, name) {
			continue
		}
		if u.Password != input.Password {
			return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "password is incorrect"}
		}
		return &u, nil
	}
	return nil, &DomainError{Code: "USER_NOT_FOUND", Message: "no such user for this role"}
}
