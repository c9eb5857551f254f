package note

import "context"

type Repository interface {
	ListByOwner(ctx context.Context, userID int) ([]Note, error)
	FindByID(ctx context.Context, id int) (Note, error)
	Create(ctx context.Context, n Note) (Note, error)
	Update(ctx context.Context, id int, p Patch) (Note, error)
	Delete(ctx context.Context, id int) error
}
