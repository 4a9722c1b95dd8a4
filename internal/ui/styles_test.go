package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStyles_NoColorRendersPlain(t *testing.T) {
	styles := GetStyles(true)

	tests := []struct {
		name string
		tag  Tag
	}{
		{"warn", TagWarn},
		{"success", TagSuccess},
		{"info", TagInfo},
		{"identity", TagIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := styles.Render(tt.tag, "value")
			assert.Equal(t, "value", out)
		})
	}
}

func TestStyles_Render_UnknownTagPassesThrough(t *testing.T) {
	styles := GetStyles(false)

	assert.Equal(t, "value", styles.Render(Tag(99), "value"))
}

func TestStyles_RenderKeepsText(t *testing.T) {
	styles := GetStyles(false)

	for _, tag := range []Tag{TagWarn, TagSuccess, TagInfo, TagIdentity} {
		assert.Contains(t, styles.Render(tag, "payload"), "payload")
	}
}

func TestDetectNoColor_WithEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.True(t, DetectNoColor())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	assert.False(t, IsTTY(f))
}

func TestShouldColor_PipedOutput(t *testing.T) {
	assert.False(t, ShouldColor(&bytes.Buffer{}))
}
