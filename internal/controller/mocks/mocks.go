// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockRenderer is a mock implementation of controller.Renderer.
type MockRenderer struct {
	mock.Mock
}

// NewMockRenderer creates a mock that asserts its expectations on cleanup.
func NewMockRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRenderer {
	mockRenderer := &MockRenderer{}
	mockRenderer.Mock.Test(t)

	t.Cleanup(func() { mockRenderer.AssertExpectations(t) })

	return mockRenderer
}

// Render provides a mock function.
func (_m *MockRenderer) Render(comparison m.Comparison) (string, error) {
	ret := _m.Called(comparison)

	return ret.String(0), ret.Error(1)
}

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// DisplaySkipped provides a mock function.
func (_m *MockUI) DisplaySkipped(ctx context.Context, path m.Path) {
	_m.Called(ctx, path)
}

// DisplayMissingBaseline provides a mock function.
func (_m *MockUI) DisplayMissingBaseline(ctx context.Context, path m.Path) {
	_m.Called(ctx, path)
}

// DisplayComparison provides a mock function.
func (_m *MockUI) DisplayComparison(ctx context.Context, comparison m.Comparison) {
	_m.Called(ctx, comparison)
}

// DisplayCheck provides a mock function.
func (_m *MockUI) DisplayCheck(ctx context.Context, check m.Check) {
	_m.Called(ctx, check)
}
