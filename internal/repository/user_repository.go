package repository

import (
	"context"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
)

type UserRepository struct {
	Gateway *gateway.Gateway
}

func NewUserRepository(gw *gateway.Gateway) *UserRepository {
	return &UserRepository{Gateway: gw}
}

func (r *UserRepository) All(ctx context.Context) ([]entity.User, error) {
	users, _, err := r.Gateway.FetchUsers(ctx)
	return users, err
}

func (r *UserRepository) Save(ctx context.Context, u entity.User) error {
	return r.Gateway.SaveUser(ctx, u)
}

// Delete removes the user record only. Leads assigned to the user stay in the
// store; pool queries never surface them to anyone else because they select
// on assignedTo, and the explicit queue purge is the recovery path.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.Gateway.DeleteUser(ctx, userID)
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	users, _, err := r.Gateway.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}
