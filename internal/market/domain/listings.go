package domain

import (
	"context"

	"github.com/apetrenko/file-market/internal/pkg/database"
)

type Listing struct {
	ID              int64
	Name            string
	Price           int64
	OwnerID         int64
	OriginalOwnerID int64
	StoragePath     string
	Available       bool
}

type ListingSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Seller string `json:"seller"`
}

type ListingsRepository interface {
	LockListing(ctx context.Context, querier database.Querier, listingID int64) (Listing, error)
	TransferListing(ctx context.Context, executor database.Executor, listingID, newOwnerID int64, newStoragePath string) error
}

type ListingsBrowser interface {
	ListAvailable(ctx context.Context) ([]ListingSummary, error)
}
