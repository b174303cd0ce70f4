// Package output provides consistent CLI output formatting for yfoil.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// bannerRule frames the startup banner.
var bannerRule = strings.Repeat("-", 40)

// Writer provides formatted output for CLI.
type Writer struct {
	out      io.Writer
	useColor bool
	styles   Styles
}

// New creates a plain output Writer.
func New(out io.Writer) *Writer {
	return &Writer{
		out:    out,
		styles: NoColorStyles(),
	}
}

// NewStyled creates a Writer that colours its output when out is a
// terminal, NO_COLOR is unset and noColor is false.
func NewStyled(out io.Writer, noColor bool) *Writer {
	w := New(out)
	if ColorEnabled(out, noColor) {
		w.useColor = true
		w.styles = DefaultStyles()
	}
	return w
}

// ColorEnabled reports whether coloured output should be written to out.
func ColorEnabled(out io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Out returns the underlying writer.
func (w *Writer) Out() io.Writer {
	return w.out
}

func (w *Writer) paint(style lipgloss.Style, s string) string {
	if !w.useColor {
		return s
	}
	return style.Render(s)
}

// Banner prints the startup banner for the given version.
func (w *Writer) Banner(version string) {
	rule := w.paint(w.styles.Dim, bannerRule)
	_, _ = fmt.Fprintln(w.out, rule)
	_, _ = fmt.Fprintln(w.out, w.paint(w.styles.Header, "yfoil version "+version))
	_, _ = fmt.Fprintln(w.out, "    -- why? because y comes after x...")
	_, _ = fmt.Fprintln(w.out, rule)
}

// Line prints msg unadorned.
func (w *Writer) Line(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Linef prints a formatted line.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status(w.paint(w.styles.Success, "✓"), msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status(w.paint(w.styles.Warning, "!"), msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status(w.paint(w.styles.Error, "✗"), msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// KeyValue prints an indented "key: value" line.
func (w *Writer) KeyValue(key string, value any) {
	_, _ = fmt.Fprintf(w.out, "    %s %v\n", w.paint(w.styles.Label, key+":"), value)
}

// Code prints a block with indentation.
func (w *Writer) Code(content string) {
	_, _ = fmt.Fprintln(w.out)
	for _, line := range strings.Split(content, "\n") {
		_, _ = fmt.Fprintf(w.out, "  %s\n", line)
	}
	_, _ = fmt.Fprintln(w.out)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}
