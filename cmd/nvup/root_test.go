package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Structure(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "nvup", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "guide")
	assert.Contains(t, names, "config")
}

func TestNewRootCmd_RejectsArguments(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"unexpected-arg"})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestConfigCmd_DefaultsFlag(t *testing.T) {
	cmd := NewRootCmd()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "--defaults"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "lazy.nvim.git")
	assert.Contains(t, out.String(), "[packages]")
}

func TestStageMessages_CoverAllStages(t *testing.T) {
	for _, stage := range []string{"detect", "install", "migrate", "write"} {
		assert.Contains(t, stageMessages, stage)
	}
}

func TestRenderMarkdown_FallsBackToPlainText(t *testing.T) {
	// tests run with NO_COLOR to force the plain path deterministically
	t.Setenv("NO_COLOR", "1")

	out := renderMarkdown(guideContent)
	assert.Equal(t, guideContent, out)
	assert.Contains(t, out, "ThemePick")
}

func TestGuideContent_MentionsEverythingWritten(t *testing.T) {
	require.NotEmpty(t, guideContent)
	for _, want := range []string{"lazy.nvim", "init.lua", "colors.lua", ":ThemePick", ":ThemePreview"} {
		assert.True(t, strings.Contains(guideContent, want), want)
	}
}
