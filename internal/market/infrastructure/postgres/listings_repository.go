package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ListingsRepository struct{}

func NewListingsRepository() *ListingsRepository {
	return &ListingsRepository{}
}

// LockListing reads the listing row under a FOR UPDATE lock. Competing
// purchases of the same file serialize here: the loser re-reads the row after
// the winner's commit and sees available = false.
func (lr *ListingsRepository) LockListing(ctx context.Context, querier database.Querier, listingID int64) (domain.Listing, error) {
	lockListingSQL := `SELECT id, name, price, owner_id, original_owner_id, storage_path, available
FROM files
WHERE id = $1
FOR UPDATE`

	var listing domain.Listing
	err := querier.QueryRow(ctx, lockListingSQL, listingID).Scan(
		&listing.ID,
		&listing.Name,
		&listing.Price,
		&listing.OwnerID,
		&listing.OriginalOwnerID,
		&listing.StoragePath,
		&listing.Available,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, &domain.ListingNotFoundError{Msg: fmt.Sprintf("file %d not found", listingID)}
		}

		return domain.Listing{}, fmt.Errorf("failed to lock listing row: %w", err)
	}

	return listing, nil
}

func (lr *ListingsRepository) TransferListing(ctx context.Context, executor database.Executor, listingID, newOwnerID int64, newStoragePath string) error {
	transferSQL := `UPDATE files SET owner_id = $1, storage_path = $2, available = FALSE WHERE id = $3`

	_, err := executor.Exec(ctx, transferSQL, newOwnerID, newStoragePath, listingID)
	if err != nil {
		return fmt.Errorf("failed to transfer listing: %w", err)
	}

	return nil
}
