// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockReportSource is a mock implementation of adapter.ReportSource.
type MockReportSource struct {
	mock.Mock
}

// NewMockReportSource creates a mock that asserts its expectations on cleanup.
func NewMockReportSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportSource {
	mockSource := &MockReportSource{}
	mockSource.Mock.Test(t)

	t.Cleanup(func() { mockSource.AssertExpectations(t) })

	return mockSource
}

// Read provides a mock function.
func (_m *MockReportSource) Read(ctx context.Context, path m.Path) (string, error) {
	ret := _m.Called(ctx, path)

	return ret.String(0), ret.Error(1)
}

// MockContextProvider is a mock implementation of adapter.ContextProvider.
type MockContextProvider struct {
	mock.Mock
}

// NewMockContextProvider creates a mock that asserts its expectations on cleanup.
func NewMockContextProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContextProvider {
	mockProvider := &MockContextProvider{}
	mockProvider.Mock.Test(t)

	t.Cleanup(func() { mockProvider.AssertExpectations(t) })

	return mockProvider
}

// Resolve provides a mock function.
func (_m *MockContextProvider) Resolve(ctx context.Context) (m.CIContext, error) {
	ret := _m.Called(ctx)

	ci, _ := ret.Get(0).(m.CIContext)

	return ci, ret.Error(1)
}

// MockCheckPublisher is a mock implementation of adapter.CheckPublisher.
type MockCheckPublisher struct {
	mock.Mock
}

// NewMockCheckPublisher creates a mock that asserts its expectations on cleanup.
func NewMockCheckPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckPublisher {
	mockPublisher := &MockCheckPublisher{}
	mockPublisher.Mock.Test(t)

	t.Cleanup(func() { mockPublisher.AssertExpectations(t) })

	return mockPublisher
}

// Publish provides a mock function.
func (_m *MockCheckPublisher) Publish(ctx context.Context, check m.Check) error {
	ret := _m.Called(ctx, check)

	return ret.Error(0)
}
