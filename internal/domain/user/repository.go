package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string) (int, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
}
