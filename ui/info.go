package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/preniv-cli/preniv/color"
	"github.com/preniv-cli/preniv/icon"
	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/style"
	"github.com/preniv-cli/preniv/util"
)

const infoWidth = 72

// wrapWidth bounds the info block to the terminal, falling back to the fixed
// width when no terminal is attached.
func wrapWidth() int {
	w, _, err := util.TerminalSize()
	if err != nil || w <= 0 {
		return infoWidth
	}
	return util.Min(infoWidth, w-2)
}

// Info renders the media information block shown between fetch and selection.
func Info(result media.Result) string {
	var b strings.Builder

	header := util.Capitalize(result.Platform) + " Media Information:"
	b.WriteString(style.Fg(color.Cyan)(header))
	b.WriteString("\n")

	writeField(&b, "Title", result.Title)
	writeField(&b, "Author", result.Author)
	if result.Duration > 0 {
		writeField(&b, "Duration", util.FormatClock(result.Duration/1000))
	}
	writeField(&b, "Options", util.Quantify(len(result.Links), "download option", "download options"))

	return b.String()
}

// Success renders a one-line success notice.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", icon.Get(icon.Success), style.Fg(color.Green)(msg))
}

// Fail renders a one-line failure notice.
func Fail(msg string) string {
	return fmt.Sprintf("%s %s", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}

	line := fmt.Sprintf("%s: %s", name, value)
	b.WriteString(style.Faint("  • "))
	b.WriteString(wordwrap.String(line, wrapWidth()))
	b.WriteString("\n")
}
