package domain

import "context"

type PurchaseService interface {
	Purchase(ctx context.Context, buyerUsername string, listingID int64) (PurchaseReceipt, error)
}

type HistoryService interface {
	ClearHistory(ctx context.Context, username string) (int64, error)
}

type UserInfoService interface {
	GetUserInfo(ctx context.Context, userID int64, username string) (TotalUserInfo, error)
}
