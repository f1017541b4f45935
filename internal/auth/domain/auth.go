package domain

import "context"

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}
