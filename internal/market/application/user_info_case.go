package application

import (
	"context"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/logging"
	"golang.org/x/sync/errgroup"
)

type UserInfoCase struct {
	userRepository domain.UserInfoRepository
	logger         logging.Logger
}

func NewUserInfoCase(userRepository domain.UserInfoRepository, logger logging.Logger) *UserInfoCase {
	return &UserInfoCase{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (uic *UserInfoCase) GetUserInfo(ctx context.Context, userID int64, username string) (domain.TotalUserInfo, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var points int64
	var files []domain.OwnedFile
	var ledger []domain.LedgerEntry

	group.Go(func() error {
		var err error
		points, err = uic.userRepository.FetchUserPoints(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		files, err = uic.userRepository.FetchOwnedFiles(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		ledger, err = uic.userRepository.FetchLedgerEntries(groupCtx, userID)
		return err
	})

	err := group.Wait()
	if err != nil {
		return domain.TotalUserInfo{}, err
	}

	return domain.TotalUserInfo{
		Username: username,
		Points:   points,
		Files:    files,
		Ledger:   ledger,
	}, nil
}
