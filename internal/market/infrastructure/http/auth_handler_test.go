package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authmocks "github.com/apetrenko/file-market/gen/mocks/auth"
	authdomain "github.com/apetrenko/file-market/internal/auth/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Authenticate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful authentication",
			requestBody:    authRequestBody{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService {
				mockService := authmocks.NewMockAuthService(ctrl)
				mockService.EXPECT().
					Authenticate(gomock.Any(), "alice", "password123").
					Return("jwt_token", nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Token string `json:"token"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, "jwt_token", response.Token)
			},
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"username": "alice"},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService {
				return authmocks.NewMockAuthService(ctrl)
			},
		},
		{
			name:           "username with path syntax rejected",
			requestBody:    authRequestBody{Username: "../../outside", Password: "password123"},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService {
				return authmocks.NewMockAuthService(ctrl)
			},
		},
		{
			name:           "username with separator rejected",
			requestBody:    authRequestBody{Username: "bob/report", Password: "password123"},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService {
				return authmocks.NewMockAuthService(ctrl)
			},
		},
		{
			name:           "wrong password",
			requestBody:    authRequestBody{Username: "alice", Password: "wrong"},
			expectedStatus: http.StatusUnauthorized,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService {
				mockService := authmocks.NewMockAuthService(ctrl)
				mockService.EXPECT().
					Authenticate(gomock.Any(), "alice", "wrong").
					Return("", &authdomain.CredentialsMismatchError{Msg: "invalid credentials"})

				return mockService
			},
		},
		{
			name:           "internal error",
			requestBody:    authRequestBody{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) authdomain.AuthService {
				mockService := authmocks.NewMockAuthService(ctrl)
				mockService.EXPECT().
					Authenticate(gomock.Any(), "alice", "password123").
					Return("", assert.AnError)

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
			handler := NewAuthHandler(mockService)

			bodyBytes, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))

			handler.Authenticate(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
