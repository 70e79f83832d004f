package usecase

import (
	"fmt"
	"strings"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateNewUser(u entity.User) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(u.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(u.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	switch u.Role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleOperator:
	default:
		errors = append(errors, ValidationError{"role", "must be ADMIN, MANAGER or OPERATOR"})
	}

	if u.Password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	}

	return errors
}
