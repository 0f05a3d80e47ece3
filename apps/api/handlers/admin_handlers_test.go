package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amped-finance/amped-api/libs/go/mocks"
	"github.com/amped-finance/amped-api/libs/go/services"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Swap(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		setupMocks     func(staking *mocks.MockStakingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "get enabled",
			method: http.MethodGet,
			setupMocks: func(staking *mocks.MockStakingService) {
				staking.EXPECT().SwapEnabled().Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"enabled":true}`,
		},
		{
			name:   "get without local executor",
			method: http.MethodGet,
			setupMocks: func(staking *mocks.MockStakingService) {
				staking.EXPECT().SwapEnabled().Return(false, services.ErrSwapToggleUnavailable)
			},
			expectedStatus: http.StatusNotImplemented,
		},
		{
			name:   "disable",
			method: http.MethodPut,
			body:   `{"enabled":false}`,
			setupMocks: func(staking *mocks.MockStakingService) {
				staking.EXPECT().SetSwapEnabled(gomock.Any(), false).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"enabled":false}`,
		},
		{
			name:           "missing enabled",
			method:         http.MethodPut,
			body:           `{}`,
			setupMocks:     func(staking *mocks.MockStakingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			staking := mocks.NewMockStakingServiceForTest(t)
			tt.setupMocks(staking)
			handler := NewAdminHandler(staking, nil)

			r := gin.New()
			r.GET("/admin/swap", handler.GetSwap)
			r.PUT("/admin/swap", handler.SetSwap)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/admin/swap", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAdminHandler_Fund(t *testing.T) {
	tests := []struct {
		name           string
		withFaucet     bool
		body           string
		setupMocks     func(faucet *mocks.MockFaucet)
		expectedStatus int
	}{
		{
			name:       "funds account",
			withFaucet: true,
			body:       `{"account":"0x70997970C51812dc3A010C7d01b50e0d17dc79C8","amount":"500"}`,
			setupMocks: func(faucet *mocks.MockFaucet) {
				faucet.EXPECT().Fund(gomock.Any(), testAccount, bigEq(500)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad address",
			withFaucet:     true,
			body:           `{"account":"0xnope","amount":"500"}`,
			setupMocks:     func(faucet *mocks.MockFaucet) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "zero amount",
			withFaucet: true,
			body:       `{"account":"0x70997970C51812dc3A010C7d01b50e0d17dc79C8","amount":"0"}`,
			setupMocks: func(faucet *mocks.MockFaucet) {
				faucet.EXPECT().Fund(gomock.Any(), testAccount, bigEq(0)).Return(stakingrouter.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "chain mode has no faucet",
			body:           `{"account":"0x70997970C51812dc3A010C7d01b50e0d17dc79C8","amount":"500"}`,
			setupMocks:     func(faucet *mocks.MockFaucet) {},
			expectedStatus: http.StatusNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			faucet := mocks.NewMockFaucet(ctrl)
			tt.setupMocks(faucet)

			handler := NewAdminHandler(mocks.NewMockStakingService(ctrl), nil)
			if tt.withFaucet {
				handler = NewAdminHandler(mocks.NewMockStakingService(ctrl), faucet)
			}
			r := gin.New()
			r.POST("/admin/faucet", handler.Fund)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/faucet", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
