package user

import "context"

// Repository persists user accounts. Lookup methods return nil when the key
// does not resolve.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*User, error)
}
