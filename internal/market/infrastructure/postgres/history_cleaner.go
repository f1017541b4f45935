package postgres

import (
	"context"
	"fmt"

	"github.com/apetrenko/file-market/internal/pkg/database"
)

type HistoryCleaner struct{}

func NewHistoryCleaner() *HistoryCleaner {
	return &HistoryCleaner{}
}

func (hc *HistoryCleaner) CountUserPurchases(ctx context.Context, querier database.Querier, userID int64) (int64, error) {
	countSQL := `SELECT COUNT(*) FROM purchases WHERE buyer_id = $1 OR seller_id = $1`

	var count int64
	err := querier.QueryRow(ctx, countSQL, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchase records: %w", err)
	}

	return count, nil
}

func (hc *HistoryCleaner) DeletePurchasesAsBuyer(ctx context.Context, executor database.Executor, userID int64) (int64, error) {
	deleteSQL := `DELETE FROM purchases WHERE buyer_id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchase records as buyer: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (hc *HistoryCleaner) DeletePurchasesAsSeller(ctx context.Context, executor database.Executor, userID int64) (int64, error) {
	deleteSQL := `DELETE FROM purchases WHERE seller_id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchase records as seller: %w", err)
	}

	return tag.RowsAffected(), nil
}
