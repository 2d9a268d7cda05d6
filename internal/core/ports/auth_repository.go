package ports

import (
	"context"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Username and
// email uniqueness is enforced at this boundary.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
