package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	marketmocks "github.com/apetrenko/file-market/gen/mocks/market"
	"github.com/apetrenko/file-market/internal/market/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestMarketHandler(
	purchaseService domain.PurchaseService,
	historyService domain.HistoryService,
	userInfoService domain.UserInfoService,
	listingsBrowser domain.ListingsBrowser,
) *MarketHandler {
	return NewMarketHandler(purchaseService, historyService, userInfoService, listingsBrowser)
}

func TestMarketHandler_Purchase(t *testing.T) {
	t.Parallel()

	receipt := domain.PurchaseReceipt{
		ListingID:   10,
		FileName:    "report.pdf",
		Buyer:       "alice",
		Seller:      "bob",
		Price:       80,
		PurchasedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful purchase",
			requestBody:    purchaseRequestBody{FileID: 10},
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(10)).
					Return(receipt, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Ok      bool                   `json:"ok"`
					Message string                 `json:"message"`
					Receipt domain.PurchaseReceipt `json:"receipt"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.True(t, response.Ok)
				assert.Equal(t, "you purchased report.pdf for 80 points", response.Message)
				assert.Equal(t, receipt, response.Receipt)
			},
		},
		{
			name:           "missing file id",
			requestBody:    gin.H{},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				return marketmocks.NewMockPurchaseService(ctrl)
			},
		},
		{
			name:           "file not found",
			requestBody:    purchaseRequestBody{FileID: 404},
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(404)).
					Return(domain.PurchaseReceipt{}, &domain.ListingNotFoundError{Msg: "file 404 not found"})

				return mockService
			},
		},
		{
			name:           "file already sold",
			requestBody:    purchaseRequestBody{FileID: 10},
			expectedStatus: http.StatusConflict,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(10)).
					Return(domain.PurchaseReceipt{}, &domain.ListingNotAvailableError{Msg: "file 10 is not available for purchase"})

				return mockService
			},
		},
		{
			name:           "own file",
			requestBody:    purchaseRequestBody{FileID: 10},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(10)).
					Return(domain.PurchaseReceipt{}, &domain.SelfPurchaseError{Msg: "cannot purchase your own file"})

				return mockService
			},
		},
		{
			name:           "not enough points",
			requestBody:    purchaseRequestBody{FileID: 10},
			expectedStatus: http.StatusPaymentRequired,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(10)).
					Return(domain.PurchaseReceipt{}, &domain.InsufficientFundsError{Msg: "balance 10 is less than price 80"})

				return mockService
			},
		},
		{
			name:           "storage failure",
			requestBody:    purchaseRequestBody{FileID: 10},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(10)).
					Return(domain.PurchaseReceipt{}, &domain.StorageMoveError{Msg: "failed to move stored file"})

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Ok      bool   `json:"ok"`
					Message string `json:"message"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.False(t, response.Ok)
				assert.Equal(t, "purchase failed, no points were charged", response.Message)
			},
		},
		{
			name:           "internal error",
			requestBody:    purchaseRequestBody{FileID: 10},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.PurchaseService {
				mockService := marketmocks.NewMockPurchaseService(ctrl)
				mockService.EXPECT().
					Purchase(gomock.Any(), "alice", int64(10)).
					Return(domain.PurchaseReceipt{}, assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := newTestMarketHandler(
				mockService,
				marketmocks.NewMockHistoryService(ctrl),
				marketmocks.NewMockUserInfoService(ctrl),
				marketmocks.NewMockListingsBrowser(ctrl),
			)

			bodyBytes, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
			c.Set(UserIDContextKey, int64(1))
			c.Set(UsernameContextKey, "alice")

			handler.Purchase(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestMarketHandler_ClearHistory(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.HistoryService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "records deleted",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.HistoryService {
				mockService := marketmocks.NewMockHistoryService(ctrl)
				mockService.EXPECT().
					ClearHistory(gomock.Any(), "alice").
					Return(int64(5), nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Success      bool   `json:"success"`
					Message      string `json:"message"`
					DeletedCount int64  `json:"deleted_count"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.True(t, response.Success)
				assert.Equal(t, "deleted 5 purchase records", response.Message)
				assert.Equal(t, int64(5), response.DeletedCount)
			},
		},
		{
			name:           "nothing to delete",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.HistoryService {
				mockService := marketmocks.NewMockHistoryService(ctrl)
				mockService.EXPECT().
					ClearHistory(gomock.Any(), "alice").
					Return(int64(0), &domain.NothingToDeleteError{Msg: "no purchase records to delete"})

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Success      bool  `json:"success"`
					DeletedCount int64 `json:"deleted_count"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.False(t, response.Success)
				assert.Equal(t, int64(0), response.DeletedCount)
			},
		},
		{
			name:           "unknown user",
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.HistoryService {
				mockService := marketmocks.NewMockHistoryService(ctrl)
				mockService.EXPECT().
					ClearHistory(gomock.Any(), "alice").
					Return(int64(0), &domain.UnknownBuyerError{Msg: "user alice not found"})

				return mockService
			},
		},
		{
			name:           "internal error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.HistoryService {
				mockService := marketmocks.NewMockHistoryService(ctrl)
				mockService.EXPECT().
					ClearHistory(gomock.Any(), "alice").
					Return(int64(0), assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := newTestMarketHandler(
				marketmocks.NewMockPurchaseService(ctrl),
				mockService,
				marketmocks.NewMockUserInfoService(ctrl),
				marketmocks.NewMockListingsBrowser(ctrl),
			)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Set(UserIDContextKey, int64(1))
			c.Set(UsernameContextKey, "alice")

			handler.ClearHistory(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestMarketHandler_GetInfo(t *testing.T) {
	t.Parallel()

	expectedInfo := domain.TotalUserInfo{
		Username: "alice",
		Points:   920,
		Files: []domain.OwnedFile{
			{ListingID: 10, Name: "report.pdf", Price: 80, Available: false},
		},
		Ledger: []domain.LedgerEntry{
			{EntryType: "debit", Amount: 80, Description: "purchase of file 10 (report.pdf)", CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		},
	}

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.UserInfoService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful get info",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.UserInfoService {
				mockService := marketmocks.NewMockUserInfoService(ctrl)
				mockService.EXPECT().
					GetUserInfo(gomock.Any(), int64(1), "alice").
					Return(expectedInfo, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response domain.TotalUserInfo
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, expectedInfo, response)
			},
		},
		{
			name:           "unknown user",
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.UserInfoService {
				mockService := marketmocks.NewMockUserInfoService(ctrl)
				mockService.EXPECT().
					GetUserInfo(gomock.Any(), int64(1), "alice").
					Return(domain.TotalUserInfo{}, &domain.UnknownBuyerError{Msg: "user alice not found"})

				return mockService
			},
		},
		{
			name:           "internal error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.UserInfoService {
				mockService := marketmocks.NewMockUserInfoService(ctrl)
				mockService.EXPECT().
					GetUserInfo(gomock.Any(), int64(1), "alice").
					Return(domain.TotalUserInfo{}, assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := newTestMarketHandler(
				marketmocks.NewMockPurchaseService(ctrl),
				marketmocks.NewMockHistoryService(ctrl),
				mockService,
				marketmocks.NewMockListingsBrowser(ctrl),
			)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(UserIDContextKey, int64(1))
			c.Set(UsernameContextKey, "alice")

			handler.GetInfo(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestMarketHandler_ListAvailable(t *testing.T) {
	t.Parallel()

	listings := []domain.ListingSummary{
		{ID: 10, Name: "report.pdf", Price: 80, Seller: "bob"},
	}

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.ListingsBrowser
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "listings returned",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ListingsBrowser {
				mockBrowser := marketmocks.NewMockListingsBrowser(ctrl)
				mockBrowser.EXPECT().
					ListAvailable(gomock.Any()).
					Return(listings, nil).
					Times(1)

				return mockBrowser
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Listings []domain.ListingSummary `json:"listings"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, listings, response.Listings)
			},
		},
		{
			name:           "internal error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ListingsBrowser {
				mockBrowser := marketmocks.NewMockListingsBrowser(ctrl)
				mockBrowser.EXPECT().
					ListAvailable(gomock.Any()).
					Return(nil, assert.AnError)

				return mockBrowser
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockBrowser := tt.prepareFn(t, ctrl)
			handler := newTestMarketHandler(
				marketmocks.NewMockPurchaseService(ctrl),
				marketmocks.NewMockHistoryService(ctrl),
				marketmocks.NewMockUserInfoService(ctrl),
				mockBrowser,
			)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handler.ListAvailable(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
