package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/nvup/nvup/pkg/ui"
)

//go:embed guide.md
var guideContent string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(renderMarkdown(guideContent))
			return nil
		},
	}
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw text when the terminal cannot take styling
func renderMarkdown(content string) string {
	if ui.DetectFormat(os.Stdout) == ui.FormatText {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
