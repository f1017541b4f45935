package domain

import (
	"context"
	"path"

	"github.com/google/uuid"
)

// BlobMover relocates a stored blob between ownership-scoped paths.
// A move must either complete or leave the source blob intact; the one
// tolerated leftover is an orphaned source copy after a successful
// copy-then-delete fallback.
type BlobMover interface {
	Move(ctx context.Context, oldPath, newPath string) error
}

// BuyerScopedPath builds the destination path for a purchased blob:
// the buyer's scope directory plus a fresh unique file name.
func BuyerScopedPath(buyerUsername, oldPath string) string {
	return path.Join(buyerUsername, uuid.NewString()+"_"+path.Base(oldPath))
}
