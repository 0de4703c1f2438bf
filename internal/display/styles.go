package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	colorHeader  = lipgloss.Color("51")  // Bright cyan
	colorSuccess = lipgloss.Color("40")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorValue   = lipgloss.Color("250") // Off-white
)

type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	fatal   lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		header:  r.NewStyle().Foreground(colorHeader),
		label:   r.NewStyle().Bold(true),
		value:   r.NewStyle().Foreground(colorValue),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
		fatal:   r.NewStyle().Foreground(colorError).Bold(true),
	}
}
