package ports

import "context"

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines the authentication use cases. Both operations return a
// signed bearer token; tokens are opaque to callers and are the sole basis
// for identity on every subsequent call.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}
