package postgres

import (
	"context"
	"fmt"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/apetrenko/file-market/internal/pkg/database"
)

type ListingsBrowser struct {
	querier database.Querier
}

func NewListingsBrowser(querier database.Querier) *ListingsBrowser {
	return &ListingsBrowser{
		querier: querier,
	}
}

func (lb *ListingsBrowser) ListAvailable(ctx context.Context) ([]domain.ListingSummary, error) {
	listSQL := `SELECT f.id, f.name, f.price, u.username
FROM files f
JOIN users u ON u.id = f.owner_id
WHERE f.available
ORDER BY f.id`

	rows, err := lb.querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list available files: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.ListingSummary, 0)
	for rows.Next() {
		var listing domain.ListingSummary
		err = rows.Scan(&listing.ID, &listing.Name, &listing.Price, &listing.Seller)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
