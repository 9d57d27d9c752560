package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByPhone(ctx context.Context, phone string) (User, error)
	TouchLastLogin(ctx context.Context, id string) error
	UpdateDisplayName(ctx context.Context, id, displayName string) error
}
