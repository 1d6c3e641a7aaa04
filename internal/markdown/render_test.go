package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"heading", "# Week 1", "<h1>Week 1</h1>\n"},
		{"emphasis", "some *key* idea", "<p>some <em>key</em> idea</p>\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderHTML(tt.md)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderHTML_DropsRawHTML(t *testing.T) {
	got, err := RenderHTML("<script>alert(1)</script>")

	require.NoError(t, err)
	assert.NotContains(t, got, "<script>")
}

func TestRenderDocument_EscapesTitle(t *testing.T) {
	got, err := RenderDocument("A & B", "text")

	require.NoError(t, err)
	assert.Contains(t, got, "<title>A &amp; B</title>")
	assert.Contains(t, got, "<p>text</p>")
}
