package domain

import (
	"context"

	"github.com/apetrenko/file-market/internal/pkg/database"
)

type UserRef struct {
	ID       int64
	Username string
}

type Account struct {
	ID       int64
	Username string
	Points   int64
}

type UsersRepository interface {
	FindByUsername(ctx context.Context, username string) (UserRef, error)
}

type AccountsRepository interface {
	LockAccounts(ctx context.Context, querier database.Querier, userIDs ...int64) ([]Account, error)
	DebitPoints(ctx context.Context, executor database.Executor, userID, amount int64) error
	CreditPoints(ctx context.Context, executor database.Executor, userID, amount int64) error
}
