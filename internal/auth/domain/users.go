package domain

import "context"

type UsersRepository interface {
	CreateUser(ctx context.Context, username, hashedPassword string, startPoints int64) (UserInfo, error)
	TryGetUserInfo(ctx context.Context, username string) (UserInfo, bool, error)
}

type UserInfo struct {
	ID           int64
	Username     string
	PasswordHash string
}
