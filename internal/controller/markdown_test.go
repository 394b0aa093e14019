package controller

import (
	"strings"
	"testing"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison() m.Comparison {
	return m.Comparison{
		Options:     m.Options{Repository: "acme/app", Commit: "abc123", Head: "feature", Base: "main"},
		HasBaseline: true,
		Rows: []m.CoverageDelta{
			{Path: "a.js", Current: 80, Baseline: ptr(60), Delta: ptr(20), Classification: m.Improved},
			{Path: "b.js", Current: 100, Classification: m.New},
			{Path: "c.js", Current: 50, Baseline: ptr(75), Delta: ptr(-25), Classification: m.Regressed},
		},
		Total: m.CoverageDelta{Current: 80, Baseline: ptr(60), Delta: ptr(20), Classification: m.Improved},
	}
}

func TestMarkdownRenderer_Render(t *testing.T) {
	body, err := NewMarkdownRenderer().Render(sampleComparison())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(body, "Coverage after merging **feature** into **main**\n\n"))
	assert.Contains(t, body, "Repository: acme/app  \nCommit: abc123")
	assert.Contains(t, body, "Total coverage: **80.00%** (▴ +20.00%)")
	assert.Contains(t, body, "| File")
	assert.Contains(t, body, "Δ")
	assert.Contains(t, body, "▴ +20.00%")
	assert.Contains(t, body, "🆕 new")
	assert.Contains(t, body, "▾ -25.00%")
	assert.True(t, strings.HasSuffix(body, "\n"))
}

func TestMarkdownRenderer_RowsKeepComparisonOrder(t *testing.T) {
	body, err := NewMarkdownRenderer().Render(sampleComparison())
	require.NoError(t, err)

	a := strings.Index(body, "a.js")
	b := strings.Index(body, "b.js")
	c := strings.Index(body, "c.js")

	require.NotEqual(t, -1, a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestMarkdownRenderer_Headers(t *testing.T) {
	tests := []struct {
		name string
		opts m.Options
		want string
	}{
		{"head and base", m.Options{Head: "feature", Base: "main"}, "Coverage after merging **feature** into **main**"},
		{"head only", m.Options{Head: "main"}, "Coverage for **main**"},
		{"no context", m.Options{}, "Coverage report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderHeader(tt.opts))
		})
	}
}

func TestMarkdownRenderer_WithoutBaseline(t *testing.T) {
	comparison := m.Comparison{
		Rows:  []m.CoverageDelta{{Path: "a.js", Current: 50, Classification: m.New}},
		Total: m.CoverageDelta{Current: 50, Classification: m.New},
	}

	body, err := NewMarkdownRenderer().Render(comparison)
	require.NoError(t, err)

	assert.Contains(t, body, "Total coverage: **50.00%**\n")
	assert.NotContains(t, body, "Δ")
	assert.NotContains(t, body, "Repository:")
	assert.Contains(t, body, "a.js")
}

func TestMarkdownRenderer_NoFiles(t *testing.T) {
	comparison := m.Comparison{Total: m.CoverageDelta{Current: 100, Classification: m.New}}

	body, err := NewMarkdownRenderer().Render(comparison)
	require.NoError(t, err)

	assert.Equal(t, "Coverage report\n\nTotal coverage: **100.00%**\n\n_No files reported._\n", body)
}

func TestMarkdownRenderer_Precision(t *testing.T) {
	comparison := sampleComparison()
	comparison.Options.Precision = 1

	body, err := NewMarkdownRenderer().Render(comparison)
	require.NoError(t, err)

	assert.Contains(t, body, "Total coverage: **80.0%** (▴ +20.0%)")
	assert.NotContains(t, body, "80.00%")
}

func TestMarkdownRenderer_RemovedFilesAreNotRendered(t *testing.T) {
	comparison := sampleComparison()
	comparison.Removed = []m.Path{"old.js"}

	body, err := NewMarkdownRenderer().Render(comparison)
	require.NoError(t, err)

	assert.NotContains(t, body, "old.js")
}

func TestMarkdownRenderer_EscapesPaths(t *testing.T) {
	comparison := m.Comparison{
		Rows:  []m.CoverageDelta{{Path: "src/b_x|y*.js", Current: 100, Classification: m.New}},
		Total: m.CoverageDelta{Current: 100, Classification: m.New},
	}

	body, err := NewMarkdownRenderer().Render(comparison)
	require.NoError(t, err)

	assert.Contains(t, body, "`src/b_x\\|y*.js`")
	assert.NotContains(t, body, "b_x|y")
}

func TestMarkdownPath(t *testing.T) {
	assert.Equal(t, "`a.js`", markdownPath("a.js"))
	assert.Equal(t, "`a\\|b.js`", markdownPath("a|b.js"))
}
