package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockStakingRouterForTest creates a MockStakingRouter tied to t.
func NewMockStakingRouterForTest(t *testing.T) *MockStakingRouter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStakingRouter(ctrl)
}

// NewMockStakingServiceForTest creates a MockStakingService tied to t.
func NewMockStakingServiceForTest(t *testing.T) *MockStakingService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStakingService(ctrl)
}

// NewMockQuerierForTest creates a MockQuerier tied to t.
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}
