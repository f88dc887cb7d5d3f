package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvup/nvup/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "unknown", ui.Format(99).String())
}

func TestDetectFormat_NoColorWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestDetectFormat_RegularFileIsText(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.False(t, ui.IsInteractive(f))
}
