package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (ur *UsersRepository) FindByUsername(ctx context.Context, username string) (domain.UserRef, error) {
	findUserSQL := `SELECT id, username FROM users WHERE username = $1`

	var user domain.UserRef
	err := ur.querier.QueryRow(ctx, findUserSQL, username).Scan(&user.ID, &user.Username)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserRef{}, &domain.UnknownBuyerError{Msg: fmt.Sprintf("user %s not found", username)}
		}

		return domain.UserRef{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
