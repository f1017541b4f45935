package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
	"github.com/apetrenko/file-market/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
)

type UserInfoRepository struct {
	querier database.Querier
	logger  logging.Logger
}

func NewUserInfoRepository(querier database.Querier, logger logging.Logger) *UserInfoRepository {
	return &UserInfoRepository{
		querier: querier,
		logger:  logger,
	}
}

func (uir *UserInfoRepository) FetchUserPoints(ctx context.Context, userID int64) (int64, error) {
	pointsSQL := `SELECT points FROM users WHERE id = $1`

	var points int64
	err := uir.querier.QueryRow(ctx, pointsSQL, userID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UnknownBuyerError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return 0, fmt.Errorf("failed to fetch user points: %w", err)
	}

	return points, nil
}

func (uir *UserInfoRepository) FetchOwnedFiles(ctx context.Context, userID int64) ([]domain.OwnedFile, error) {
	filesSQL := `SELECT id, name, price, available FROM files WHERE owner_id = $1 ORDER BY id`

	rows, err := uir.querier.Query(ctx, filesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned files: %w", err)
	}
	defer rows.Close()

	files := make([]domain.OwnedFile, 0)
	for rows.Next() {
		var file domain.OwnedFile
		err = rows.Scan(&file.ListingID, &file.Name, &file.Price, &file.Available)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		files = append(files, file)
	}

	return files, nil
}

func (uir *UserInfoRepository) FetchLedgerEntries(ctx context.Context, userID int64) ([]domain.LedgerEntry, error) {
	ledgerSQL := `SELECT entry_type, amount, description, created_at
FROM transaction_history
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := uir.querier.Query(ctx, ledgerSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var entry domain.LedgerEntry
		err = rows.Scan(&entry.EntryType, &entry.Amount, &entry.Description, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
