package postgres

import (
	"context"
	"fmt"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
)

type AccountsRepository struct{}

func NewAccountsRepository() *AccountsRepository {
	return &AccountsRepository{}
}

// LockAccounts takes FOR UPDATE row locks on the given users, always in id
// order so concurrent purchases with crossing buyer/seller pairs cannot
// deadlock.
func (ar *AccountsRepository) LockAccounts(ctx context.Context, querier database.Querier, userIDs ...int64) ([]domain.Account, error) {
	lockAccountsSQL := `SELECT id, username, points
FROM users
WHERE id = ANY($1)
ORDER BY id
FOR UPDATE`

	rows, err := querier.Query(ctx, lockAccountsSQL, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to select users for update: %w", err)
	}

	accounts := make([]domain.Account, 0, len(userIDs))
	for rows.Next() {
		var acc domain.Account
		err = rows.Scan(&acc.ID, &acc.Username, &acc.Points)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	rows.Close()

	return accounts, nil
}

func (ar *AccountsRepository) DebitPoints(ctx context.Context, executor database.Executor, userID, amount int64) error {
	debitSQL := `UPDATE users SET points = points - $1 WHERE id = $2 AND points >= $1`

	tag, err := executor.Exec(ctx, debitSQL, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to debit user points: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientFundsError{Msg: "insufficient funds"}
	}

	return nil
}

func (ar *AccountsRepository) CreditPoints(ctx context.Context, executor database.Executor, userID, amount int64) error {
	creditSQL := `UPDATE users SET points = points + $1 WHERE id = $2`

	_, err := executor.Exec(ctx, creditSQL, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to credit user points: %w", err)
	}

	return nil
}
