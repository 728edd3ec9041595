package interfaces

import (
	"context"

	"bengkel_pos/internal/domain/entities"
)

// IUserRepository stores login users. GetByUsername returns an empty User
// (ID == "") when the username is unknown.
type IUserRepository interface {
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	Upsert(ctx context.Context, user entities.User) (entities.User, error)
}
