// Code generated by MockGen. DO NOT EDIT.
// Source: negotiation.go
//
// Generated by this command:
//
//	mockgen -source=negotiation.go -destination=../mocks/mock_negotiation_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "mealmatch/domain"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockINegotiationRepository is a mock of INegotiationRepository interface.
type MockINegotiationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockINegotiationRepositoryMockRecorder
	isgomock struct{}
}

// MockINegotiationRepositoryMockRecorder is the mock recorder for MockINegotiationRepository.
type MockINegotiationRepositoryMockRecorder struct {
	mock *MockINegotiationRepository
}

// NewMockINegotiationRepository creates a new mock instance.
func NewMockINegotiationRepository(ctrl *gomock.Controller) *MockINegotiationRepository {
	mock := &MockINegotiationRepository{ctrl: ctrl}
	mock.recorder = &MockINegotiationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockINegotiationRepository) EXPECT() *MockINegotiationRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockINegotiationRepository) Create(n domain.Negotiation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", n)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockINegotiationRepositoryMockRecorder) Create(n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockINegotiationRepository)(nil).Create), n)
}

// Get mocks base method.
func (m *MockINegotiationRepository) Get(id uuid.UUID) (domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockINegotiationRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockINegotiationRepository)(nil).Get), id)
}

// ListAll mocks base method.
func (m *MockINegotiationRepository) ListAll() ([]domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAll")
	ret0, _ := ret[0].([]domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAll indicates an expected call of ListAll.
func (mr *MockINegotiationRepositoryMockRecorder) ListAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAll", reflect.TypeOf((*MockINegotiationRepository)(nil).ListAll))
}

// ListByRestaurant mocks base method.
func (m *MockINegotiationRepository) ListByRestaurant(restaurantID string, onlyPending bool) ([]domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRestaurant", restaurantID, onlyPending)
	ret0, _ := ret[0].([]domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByRestaurant indicates an expected call of ListByRestaurant.
func (mr *MockINegotiationRepositoryMockRecorder) ListByRestaurant(restaurantID, onlyPending any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRestaurant", reflect.TypeOf((*MockINegotiationRepository)(nil).ListByRestaurant), restaurantID, onlyPending)
}

// ListByUser mocks base method.
func (m *MockINegotiationRepository) ListByUser(userID string) ([]domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", userID)
	ret0, _ := ret[0].([]domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockINegotiationRepositoryMockRecorder) ListByUser(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockINegotiationRepository)(nil).ListByUser), userID)
}

// Transition mocks base method.
func (m *MockINegotiationRepository) Transition(id uuid.UUID, apply func(*domain.Negotiation) error) (domain.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transition", id, apply)
	ret0, _ := ret[0].(domain.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transition indicates an expected call of Transition.
func (mr *MockINegotiationRepositoryMockRecorder) Transition(id, apply any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transition", reflect.TypeOf((*MockINegotiationRepository)(nil).Transition), id, apply)
}
