package postgres

import (
	"context"
	"fmt"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
)

const (
	entryTypeDebit  = "debit"
	entryTypeCredit = "credit"
)

type LedgerRecorder struct{}

func NewLedgerRecorder() *LedgerRecorder {
	return &LedgerRecorder{}
}

// RecordPurchase appends the purchase record plus the two ledger entries
// (buyer debit, seller credit) for one completed transaction.
func (lr *LedgerRecorder) RecordPurchase(ctx context.Context, executor database.Executor, record domain.PurchaseRecord) error {
	insertPurchaseSQL := `INSERT INTO purchases (buyer_id, seller_id, file_id, price) VALUES ($1, $2, $3, $4)`
	_, err := executor.Exec(ctx, insertPurchaseSQL, record.BuyerID, record.SellerID, record.ListingID, record.Price)
	if err != nil {
		return fmt.Errorf("failed to insert purchase record: %w", err)
	}

	insertHistorySQL := `INSERT INTO transaction_history (user_id, entry_type, amount, description) VALUES ($1, $2, $3, $4)`

	debitDescription := fmt.Sprintf("purchase of file %d (%s)", record.ListingID, record.FileName)
	_, err = executor.Exec(ctx, insertHistorySQL, record.BuyerID, entryTypeDebit, record.Price, debitDescription)
	if err != nil {
		return fmt.Errorf("failed to insert buyer history entry: %w", err)
	}

	creditDescription := fmt.Sprintf("sale of file %d (%s)", record.ListingID, record.FileName)
	_, err = executor.Exec(ctx, insertHistorySQL, record.SellerID, entryTypeCredit, record.Price, creditDescription)
	if err != nil {
		return fmt.Errorf("failed to insert seller history entry: %w", err)
	}

	return nil
}
