package usecase

import (
	"context"
	"time"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

// Fixed bootstrap credentials, unchanged across deployments.
const (
	bootstrapAdminID       = "admin1"
	bootstrapAdminName     = "Admin"
	bootstrapAdminPassword = "HAYOT-YO'LI.1234."
)

type EnsureAdminOutput struct {
	Users   []entity.User
	Created bool
}

// EnsureAdminUseCase is the idempotent startup bootstrap: exactly one ADMIN
// record must exist. When none is found one is synthesized with the fixed
// credentials, persisted, and prepended to the returned set. Running it again
// never produces a second admin.
type EnsureAdminUseCase struct {
	Users UserRepositoryInterface
}

func NewEnsureAdminUseCase(users UserRepositoryInterface) *EnsureAdminUseCase {
	return &EnsureAdminUseCase{Users: users}
}

func (uc *EnsureAdminUseCase) Execute(ctx context.Context) (*EnsureAdminOutput, error) {
	users, err := uc.Users.All(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "USER_FETCH_FAILED",
			Message: "failed to fetch users: " + err.Error(),
		}
	}

	for _, u := range users {
		if u.Role == entity.RoleAdmin {
			return &EnsureAdminOutput{Users: users, Created: false}, nil
		}
	}

	admin := entity.User{
		ID:         bootstrapAdminID,
		Name:       bootstrapAdminName,
		Role:       entity.RoleAdmin,
		Password:   bootstrapAdminPassword,
		IsApproved: true,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.Users.Save(ctx, admin); err != nil {
		return nil, &TechnicalError{
			Code:    "ADMIN_BOOTSTRAP_FAILED",
			Message: "failed to persist bootstrap admin: " + err.Error(),
		}
	}

	return &EnsureAdminOutput{
		Users:   append([]entity.User{admin}, users...),
		Created: true,
	}, nil
}
