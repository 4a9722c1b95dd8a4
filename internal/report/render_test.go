package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner_FixedWidth(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"short title", "MEMORY"},
		{"long title", "INFODUMP DIAGNOSTIC REPORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			banner := Banner(tt.title)

			assert.Len(t, banner, bannerWidth)
			assert.Contains(t, banner, tt.title)
			assert.True(t, strings.HasPrefix(banner, "="))
			assert.True(t, strings.HasSuffix(banner, "="))
		})
	}
}

func TestBanner_OverlongTitleStillRenders(t *testing.T) {
	title := strings.Repeat("A", bannerWidth+10)

	banner := Banner(title)

	assert.Contains(t, banner, title)
}

func TestRenderer_NoColorEmitsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.Section(Section{Title: TitleMemory, Body: "RAM: fine", Status: StatusOK})

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, TitleMemory)
	assert.Contains(t, out, "RAM: fine")
}

func TestRenderer_EmptyBodyStillHasBanner(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.Section(Section{Title: TitleFooter, Status: StatusOK})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], TitleFooter)
}
