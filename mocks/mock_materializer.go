// Code generated by MockGen. DO NOT EDIT.
// Source: materializer.go
//
// Generated by this command:
//
//	mockgen -source=materializer.go -destination=../mocks/mock_materializer.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	domain "mealmatch/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIMaterializer is a mock of IMaterializer interface.
type MockIMaterializer struct {
	ctrl     *gomock.Controller
	recorder *MockIMaterializerMockRecorder
	isgomock struct{}
}

// MockIMaterializerMockRecorder is the mock recorder for MockIMaterializer.
type MockIMaterializerMockRecorder struct {
	mock *MockIMaterializer
}

// NewMockIMaterializer creates a new mock instance.
func NewMockIMaterializer(ctrl *gomock.Controller) *MockIMaterializer {
	mock := &MockIMaterializer{ctrl: ctrl}
	mock.recorder = &MockIMaterializerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMaterializer) EXPECT() *MockIMaterializerMockRecorder {
	return m.recorder
}

// Materialize mocks base method.
func (m *MockIMaterializer) Materialize(ctx context.Context, n domain.Negotiation) (domain.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Materialize", ctx, n)
	ret0, _ := ret[0].(domain.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Materialize indicates an expected call of Materialize.
func (mr *MockIMaterializerMockRecorder) Materialize(ctx, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Materialize", reflect.TypeOf((*MockIMaterializer)(nil).Materialize), ctx, n)
}
