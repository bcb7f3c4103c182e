// Code generated by MockGen. DO NOT EDIT.
// Source: bargain_service.go
//
// Generated by this command:
//
//	mockgen -source=bargain_service.go -destination=../mocks/mock_bargain_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	domain "mealmatch/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIBargainService is a mock of IBargainService interface.
type MockIBargainService struct {
	ctrl     *gomock.Controller
	recorder *MockIBargainServiceMockRecorder
	isgomock struct{}
}

// MockIBargainServiceMockRecorder is the mock recorder for MockIBargainService.
type MockIBargainServiceMockRecorder struct {
	mock *MockIBargainService
}

// NewMockIBargainService creates a new mock instance.
func NewMockIBargainService(ctrl *gomock.Controller) *MockIBargainService {
	mock := &MockIBargainService{ctrl: ctrl}
	mock.recorder = &MockIBargainServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIBargainService) EXPECT() *MockIBargainServiceMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockIBargainService) Get(ctx context.Context, bargainID string) (domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, bargainID)
	ret0, _ := ret[0].(domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIBargainServiceMockRecorder) Get(ctx, bargainID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIBargainService)(nil).Get), ctx, bargainID)
}

// ListAll mocks base method.
func (m *MockIBargainService) ListAll(ctx context.Context) ([]domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAll", ctx)
	ret0, _ := ret[0].([]domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAll indicates an expected call of ListAll.
func (mr *MockIBargainServiceMockRecorder) ListAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAll", reflect.TypeOf((*MockIBargainService)(nil).ListAll), ctx)
}

// ListByRestaurant mocks base method.
func (m *MockIBargainService) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRestaurant", ctx, restaurantID)
	ret0, _ := ret[0].([]domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByRestaurant indicates an expected call of ListByRestaurant.
func (mr *MockIBargainServiceMockRecorder) ListByRestaurant(ctx, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRestaurant", reflect.TypeOf((*MockIBargainService)(nil).ListByRestaurant), ctx, restaurantID)
}

// ListByUser mocks base method.
func (m *MockIBargainService) ListByUser(ctx context.Context, userID string) ([]domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID)
	ret0, _ := ret[0].([]domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockIBargainServiceMockRecorder) ListByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockIBargainService)(nil).ListByUser), ctx, userID)
}

// Propose mocks base method.
func (m *MockIBargainService) Propose(ctx context.Context, cmd domain.ProposeCommand) (domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Propose", ctx, cmd)
	ret0, _ := ret[0].(domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Propose indicates an expected call of Propose.
func (mr *MockIBargainServiceMockRecorder) Propose(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Propose", reflect.TypeOf((*MockIBargainService)(nil).Propose), ctx, cmd)
}

// ResolveCounter mocks base method.
func (m *MockIBargainService) ResolveCounter(ctx context.Context, cmd domain.CounterDecisionCommand) (domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveCounter", ctx, cmd)
	ret0, _ := ret[0].(domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveCounter indicates an expected call of ResolveCounter.
func (mr *MockIBargainServiceMockRecorder) ResolveCounter(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveCounter", reflect.TypeOf((*MockIBargainService)(nil).ResolveCounter), ctx, cmd)
}

// Respond mocks base method.
func (m *MockIBargainService) Respond(ctx context.Context, cmd domain.RespondCommand) (domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Respond", ctx, cmd)
	ret0, _ := ret[0].(domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Respond indicates an expected call of Respond.
func (mr *MockIBargainServiceMockRecorder) Respond(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Respond", reflect.TypeOf((*MockIBargainService)(nil).Respond), ctx, cmd)
}
