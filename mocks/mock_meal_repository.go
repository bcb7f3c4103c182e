// Code generated by MockGen. DO NOT EDIT.
// Source: meal.go
//
// Generated by this command:
//
//	mockgen -source=meal.go -destination=../mocks/mock_meal_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "mealmatch/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIMealRepository is a mock of IMealRepository interface.
type MockIMealRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIMealRepositoryMockRecorder
	isgomock struct{}
}

// MockIMealRepositoryMockRecorder is the mock recorder for MockIMealRepository.
type MockIMealRepositoryMockRecorder struct {
	mock *MockIMealRepository
}

// NewMockIMealRepository creates a new mock instance.
func NewMockIMealRepository(ctrl *gomock.Controller) *MockIMealRepository {
	mock := &MockIMealRepository{ctrl: ctrl}
	mock.recorder = &MockIMealRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMealRepository) EXPECT() *MockIMealRepositoryMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockIMealRepository) Get(id string) (domain.Meal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Meal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIMealRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIMealRepository)(nil).Get), id)
}

// List mocks base method.
func (m *MockIMealRepository) List() ([]domain.Meal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List")
	ret0, _ := ret[0].([]domain.Meal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockIMealRepositoryMockRecorder) List() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockIMealRepository)(nil).List))
}

// Put mocks base method.
func (m *MockIMealRepository) Put(meal domain.Meal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", meal)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockIMealRepositoryMockRecorder) Put(meal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockIMealRepository)(nil).Put), meal)
}
