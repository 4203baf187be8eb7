package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// softenHTML converts the light inline HTML used in card descriptions and the
// legal text into markdown glamour can render. Unknown tags are dropped.
func softenHTML(s string) string {
	replacements := []struct{ from, to string }{
		{"<br>", "\n"}, {"<br/>", "\n"}, {"<br />", "\n"},
		{"<p>", "\n\n"}, {"</p>", ""},
		{"<strong>", "**"}, {"</strong>", "**"},
		{"<b>", "**"}, {"</b>", "**"},
		{"<em>", "*"}, {"</em>", "*"},
		{"<i>", "*"}, {"</i>", "*"},
		{"<ul>", "\n"}, {"</ul>", "\n"},
		{"<li>", "\n- "}, {"</li>", ""},
	}
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// renderMarkdown renders markdown for a modal body. Rendering failures fall
// back to the plain text — a card description must never take the modal down.
func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
