package application

import (
	"context"
	"fmt"
	"time"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
	"github.com/apetrenko/file-market/internal/pkg/logging"
)

const defaultMoveTimeout = 30 * time.Second

// PurchaseCase runs the ownership-transfer transaction: conditional debit of
// the buyer, credit of the seller, relocation of the stored blob and the
// listing/ledger updates, all of which commit or roll back together. The blob
// move is the only step outside the datastore transaction: it runs after the
// tentative debit/credit, and the transaction commits only if the move
// succeeded.
type PurchaseCase struct {
	users    domain.UsersRepository
	listings domain.ListingsRepository
	accounts domain.AccountsRepository
	recorder domain.PurchaseRecorder
	mover    domain.BlobMover

	txManager   database.TxManager
	logger      logging.Logger
	moveTimeout time.Duration
}

func NewPurchaseCase(
	users domain.UsersRepository,
	listings domain.ListingsRepository,
	accounts domain.AccountsRepository,
	recorder domain.PurchaseRecorder,
	mover domain.BlobMover,
	txManager database.TxManager,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		users:       users,
		listings:    listings,
		accounts:    accounts,
		recorder:    recorder,
		mover:       mover,
		txManager:   txManager,
		logger:      logger,
		moveTimeout: defaultMoveTimeout,
	}
}

func (pc *PurchaseCase) Purchase(ctx context.Context, buyerUsername string, listingID int64) (domain.PurchaseReceipt, error) {
	buyer, err := pc.users.FindByUsername(ctx, buyerUsername)
	if err != nil {
		return domain.PurchaseReceipt{}, err
	}

	var receipt domain.PurchaseReceipt
	var oldPath, newPath string
	moved := false

	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		listing, err := pc.listings.LockListing(ctx, executor, listingID)
		if err != nil {
			return err
		}

		if !listing.Available {
			return &domain.ListingNotAvailableError{Msg: fmt.Sprintf("file %d is not available for purchase", listingID)}
		}

		if listing.OwnerID == buyer.ID {
			return &domain.SelfPurchaseError{Msg: "cannot purchase your own file"}
		}

		if listing.Price < 0 {
			return &domain.InvalidPriceError{Msg: fmt.Sprintf("file %d has invalid price %d", listingID, listing.Price)}
		}

		buyerAcc, sellerAcc, err := pc.lockParties(ctx, executor, buyer.ID, listing.OwnerID)
		if err != nil {
			return err
		}

		if buyerAcc.Points < listing.Price {
			return &domain.InsufficientFundsError{Msg: fmt.Sprintf("balance %d is less than price %d", buyerAcc.Points, listing.Price)}
		}

		// The debit re-checks the balance at write time; do not trust the read.
		if err := pc.accounts.DebitPoints(ctx, executor, buyerAcc.ID, listing.Price); err != nil {
			return err
		}

		if err := pc.accounts.CreditPoints(ctx, executor, sellerAcc.ID, listing.Price); err != nil {
			return err
		}

		oldPath = listing.StoragePath
		newPath = domain.BuyerScopedPath(buyer.Username, listing.StoragePath)

		moveCtx, cancel := context.WithTimeout(ctx, pc.moveTimeout)
		defer cancel()

		if err := pc.mover.Move(moveCtx, oldPath, newPath); err != nil {
			return &domain.StorageMoveError{Msg: fmt.Sprintf("failed to move stored file: %v", err)}
		}
		moved = true

		if err := pc.listings.TransferListing(ctx, executor, listingID, buyer.ID, newPath); err != nil {
			return err
		}

		record := domain.PurchaseRecord{
			BuyerID:   buyerAcc.ID,
			SellerID:  sellerAcc.ID,
			ListingID: listingID,
			FileName:  listing.Name,
			Price:     listing.Price,
		}
		if err := pc.recorder.RecordPurchase(ctx, executor, record); err != nil {
			return err
		}

		receipt = domain.PurchaseReceipt{
			ListingID:   listingID,
			FileName:    listing.Name,
			Buyer:       buyer.Username,
			Seller:      sellerAcc.Username,
			Price:       listing.Price,
			StoragePath: newPath,
			PurchasedAt: time.Now(),
		}

		return nil
	})

	if err != nil {
		if moved {
			pc.restoreBlob(oldPath, newPath)
		}

		return domain.PurchaseReceipt{}, err
	}

	return receipt, nil
}

func (pc *PurchaseCase) lockParties(ctx context.Context, querier database.Querier, buyerID, sellerID int64) (buyer, seller domain.Account, err error) {
	accounts, err := pc.accounts.LockAccounts(ctx, querier, buyerID, sellerID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	for _, acc := range accounts {
		switch acc.ID {
		case buyerID:
			buyer = acc
		case sellerID:
			seller = acc
		}
	}

	if buyer.ID != buyerID || seller.ID != sellerID {
		return domain.Account{}, domain.Account{}, fmt.Errorf("failed to lock both purchase parties (%d, %d)", buyerID, sellerID)
	}

	return buyer, seller, nil
}

// restoreBlob puts a moved blob back after the datastore transaction failed
// to commit. Best effort: balances and ownership rolled back either way, the
// blob is just returned to its seller-scoped path.
func (pc *PurchaseCase) restoreBlob(oldPath, newPath string) {
	restoreCtx, cancel := context.WithTimeout(context.Background(), pc.moveTimeout)
	defer cancel()

	if err := pc.mover.Move(restoreCtx, newPath, oldPath); err != nil {
		pc.logger.Warn("failed to restore blob after rollback", "path", newPath, "error", err.Error())
	}
}
