package postgres

import (
	"context"
	"errors"

	"github.com/apetrenko/file-market/internal/auth/domain"
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

func (r *UsersRepository) CreateUser(ctx context.Context, username, hashedPassword string, startPoints int64) (domain.UserInfo, error) {
	creationSQL := `INSERT INTO users (username, password_hash, points) VALUES ($1, $2, $3) RETURNING id, username, password_hash`

	var userInfo domain.UserInfo
	row := r.querier.QueryRow(ctx, creationSQL, username, hashedPassword, startPoints)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		return domain.UserInfo{}, err
	}

	return userInfo, nil
}

func (r *UsersRepository) TryGetUserInfo(ctx context.Context, username string) (domain.UserInfo, bool, error) {
	querySQL := `SELECT id, username, password_hash FROM users WHERE username = $1`

	var userInfo domain.UserInfo
	row := r.querier.QueryRow(ctx, querySQL, username)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserInfo{}, false, nil
		}

		return domain.UserInfo{}, false, err
	}

	return userInfo, true, nil
}
