package domain

import (
	"context"
	"time"

	"github.com/apetrenko/file-market/internal/pkg/database"
)

type PurchaseRecord struct {
	BuyerID   int64
	SellerID  int64
	ListingID int64
	FileName  string
	Price     int64
}

type PurchaseReceipt struct {
	ListingID   int64     `json:"file_id"`
	FileName    string    `json:"file_name"`
	Buyer       string    `json:"buyer"`
	Seller      string    `json:"seller"`
	Price       int64     `json:"price"`
	StoragePath string    `json:"-"`
	PurchasedAt time.Time `json:"purchased_at"`
}

type PurchaseRecorder interface {
	RecordPurchase(ctx context.Context, executor database.Executor, record PurchaseRecord) error
}

type HistoryCleaner interface {
	CountUserPurchases(ctx context.Context, querier database.Querier, userID int64) (int64, error)
	DeletePurchasesAsBuyer(ctx context.Context, executor database.Executor, userID int64) (int64, error)
	DeletePurchasesAsSeller(ctx context.Context, executor database.Executor, userID int64) (int64, error)
}
