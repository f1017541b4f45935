package application

import (
	"context"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
)

// ClearHistoryCase purges a user's own purchase records. It never touches
// point balances or file ownership.
type ClearHistoryCase struct {
	users     domain.UsersRepository
	cleaner   domain.HistoryCleaner
	txManager database.TxManager
}

func NewClearHistoryCase(
	users domain.UsersRepository,
	cleaner domain.HistoryCleaner,
	txManager database.TxManager,
) *ClearHistoryCase {
	return &ClearHistoryCase{
		users:     users,
		cleaner:   cleaner,
		txManager: txManager,
	}
}

func (chc *ClearHistoryCase) ClearHistory(ctx context.Context, username string) (int64, error) {
	user, err := chc.users.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	var deleted int64

	err = chc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		count, err := chc.cleaner.CountUserPurchases(ctx, executor, user.ID)
		if err != nil {
			return err
		}

		if count == 0 {
			return &domain.NothingToDeleteError{Msg: "no purchase records to delete"}
		}

		asBuyer, err := chc.cleaner.DeletePurchasesAsBuyer(ctx, executor, user.ID)
		if err != nil {
			return err
		}

		asSeller, err := chc.cleaner.DeletePurchasesAsSeller(ctx, executor, user.ID)
		if err != nil {
			return err
		}

		deleted = asBuyer + asSeller
		return nil
	})

	if err != nil {
		return 0, err
	}

	return deleted, nil
}
