package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

type purchaseRequestBody struct {
	FileID int64 `json:"file_id" binding:"required,gt=0"`
}

type MarketHandler struct {
	purchaseService domain.PurchaseService
	historyService  domain.HistoryService
	userInfoService domain.UserInfoService
	listingsBrowser domain.ListingsBrowser
}

func NewMarketHandler(
	purchaseService domain.PurchaseService,
	historyService domain.HistoryService,
	userInfoService domain.UserInfoService,
	listingsBrowser domain.ListingsBrowser,
) *MarketHandler {
	return &MarketHandler{
		purchaseService: purchaseService,
		historyService:  historyService,
		userInfoService: userInfoService,
		listingsBrowser: listingsBrowser,
	}
}

func (h *MarketHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "invalid request body"})
		return
	}

	username := c.GetString(UsernameContextKey)

	receipt, err := h.purchaseService.Purchase(c, username, body.FileID)
	if err != nil {
		handlePurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("you purchased %s for %d points", receipt.FileName, receipt.Price),
		"receipt": receipt,
	})
}

func (h *MarketHandler) ClearHistory(c *gin.Context) {
	username := c.GetString(UsernameContextKey)

	deleted, err := h.historyService.ClearHistory(c, username)
	if err != nil {
		if errors.Is(err, &domain.NothingToDeleteError{}) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "nothing to delete", "deleted_count": 0})
			return
		}

		if errors.Is(err, &domain.UnknownBuyerError{}) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error(), "deleted_count": 0})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error", "deleted_count": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       fmt.Sprintf("deleted %d purchase records", deleted),
		"deleted_count": deleted,
	})
}

func (h *MarketHandler) GetInfo(c *gin.Context) {
	userID := c.GetInt64(UserIDContextKey)
	username := c.GetString(UsernameContextKey)

	info, err := h.userInfoService.GetUserInfo(c, userID, username)
	if err != nil {
		if errors.Is(err, &domain.UnknownBuyerError{}) {
			c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *MarketHandler) ListAvailable(c *gin.Context) {
	listings, err := h.listingsBrowser.ListAvailable(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func handlePurchaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.UnknownBuyerError{}), errors.Is(err, &domain.ListingNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": err.Error()})
	case errors.Is(err, &domain.ListingNotAvailableError{}):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "message": err.Error()})
	case errors.Is(err, &domain.SelfPurchaseError{}), errors.Is(err, &domain.InvalidPriceError{}):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": err.Error()})
	case errors.Is(err, &domain.InsufficientFundsError{}):
		c.JSON(http.StatusPaymentRequired, gin.H{"ok": false, "message": err.Error()})
	default:
		// Storage or datastore failure: everything rolled back, no charge.
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "purchase failed, no points were charged"})
	}
}
