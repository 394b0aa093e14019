// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"covdelta.dev/pkg/covdelta/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a mock that asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Report provides a mock function.
func (_m *MockWorkflow) Report(ctx context.Context, args domain.ReportArgs) (domain.Result, error) {
	ret := _m.Called(ctx, args)

	result, _ := ret.Get(0).(domain.Result)

	return result, ret.Error(1)
}
