package domain

import (
	"context"
	"time"
)

type OwnedFile struct {
	ListingID int64  `json:"file_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

type LedgerEntry struct {
	EntryType   string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TotalUserInfo struct {
	Username string        `json:"username"`
	Points   int64         `json:"points"`
	Files    []OwnedFile   `json:"files"`
	Ledger   []LedgerEntry `json:"history"`
}

type UserInfoRepository interface {
	FetchUserPoints(ctx context.Context, userID int64) (int64, error)
	FetchOwnedFiles(ctx context.Context, userID int64) ([]OwnedFile, error)
	FetchLedgerEntries(ctx context.Context, userID int64) ([]LedgerEntry, error)
}
