// Package ux styles terminal output for the numerals CLI.
package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Palette: clay and bronze, after fired tablets and cast numerals.
var (
	ColorSand   = lipgloss.Color("#E8C07D") // titles
	ColorBronze = lipgloss.Color("#C7883A") // glyphs
	ColorClay   = lipgloss.Color("#9C5B3B") // borders
	ColorStone  = lipgloss.Color("#7A7468") // muted text

	ColorSuccess = lipgloss.Color("#6FBF73")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles is the set of styles a Printer renders with.
type Styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Glyph   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorSand),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(ColorStone),
		Glyph:   r.NewStyle().Foreground(ColorBronze),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Foreground(ColorError),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorClay).
			Padding(0, 1),
	}
}

// Icon is a one-character status marker.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// ColorMode is the configured color policy.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes styled lines to one writer.
type Printer struct {
	w      io.Writer
	Styles Styles
}

// NewPrinter returns a printer for w. Colors follow mode; auto enables them
// only when w is a terminal and NO_COLOR is unset.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)
	switch {
	case mode == ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case mode == ColorNever, !IsTerminal(w), os.Getenv("NO_COLOR") != "":
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, Styles: newStyles(r)}
}

// Render colors an icon by meaning.
func (p *Printer) Render(i Icon) string {
	switch i {
	case IconSuccess:
		return p.Styles.Success.Render(string(i))
	case IconWarning:
		return p.Styles.Warning.Render(string(i))
	case IconError:
		return p.Styles.Error.Render(string(i))
	default:
		return p.Styles.Muted.Render(string(i))
	}
}

// Title prints a heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.Styles.Title.Render(text))
}

// Success prints a line marked with a check.
func (p *Printer) Success(text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Render(IconSuccess), p.Styles.Success.Render(text))
}

// Warning prints a line marked with a warning sign.
func (p *Printer) Warning(text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Render(IconWarning), p.Styles.Warning.Render(text))
}

// Error prints a line marked with a cross.
func (p *Printer) Error(text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Render(IconError), p.Styles.Error.Render(text))
}

// Field prints an aligned "label: value" line.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.Styles.Muted.Render(fmt.Sprintf("%-12s", label+":")), value)
}

// Glyphs prints a line of numeral symbols inside a box.
func (p *Printer) Glyphs(text string) {
	fmt.Fprintln(p.w, p.Styles.Box.Render(p.Styles.Glyph.Render(text)))
}

// Bullet prints an indented list item.
func (p *Printer) Bullet(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.Render(IconBullet), fmt.Sprintf(format, args...))
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Table prints rows as left-aligned columns.
func (p *Printer) Table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			pad := ""
			if i < len(widths) {
				pad = strings.Repeat(" ", widths[i]-lipgloss.Width(c))
			}
			parts[i] = style.Render(c) + pad
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	fmt.Fprintln(p.w, line(header, p.Styles.Bold))
	for _, row := range rows {
		fmt.Fprintln(p.w, line(row, lipgloss.NewStyle()))
	}
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
