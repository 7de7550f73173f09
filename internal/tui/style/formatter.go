// Package style centralizes the lipgloss styles used for workflow output.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorOnce    sync.Once
	colorEnabled bool
)

// colorsEnabled reports whether styled output should be emitted.
// Colors are dropped when stdout is not a terminal or NO_COLOR is set.
func colorsEnabled() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorEnabled = false
			return
		}
		colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	})
	return colorEnabled
}

func render(style lipgloss.Style, text string) string {
	if !colorsEnabled() {
		return text
	}
	return style.Render(text)
}

// Ok colors success markers green
func Ok(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("2")), text)
}

// Warn colors warning markers yellow
func Warn(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("3")), text)
}

// Err colors error markers red
func Err(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("1")), text)
}

// Header colors step headers and banners cyan
func Header(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("6")), text)
}

// Branch colors a branch name
func Branch(name string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("12")), name)
}

// Dim makes text dim/gray
func Dim(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("8")), text)
}
