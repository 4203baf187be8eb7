package tui

import (
	"strings"
)

func (m appModel) renderChangelogModal() string {
	cl := m.session().Data.Changelog
	if cl == nil {
		return ""
	}
	var b strings.Builder
	for _, ch := range cl.Changes {
		b.WriteString(glyphBullet())
		b.WriteString(" ")
		b.WriteString(ch)
		b.WriteString("\n")
	}
	if cl.AINote != "" {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render(cl.AINote))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("esc: close"))

	title := "What's new"
	if cl.Version != "" {
		title += " · " + cl.Version
	}
	return renderModalBox(m.width, title, b.String())
}

func (m appModel) renderLegalModal() string {
	lt := m.session().Data.LegalText
	if lt == nil {
		return ""
	}
	body := renderMarkdown(softenHTML(lt.Content), modalBodyWidth(m.width)-2)
	body += "\n" + styleMuted().Render("esc: accept and close")

	title := lt.Title
	if title == "" {
		title = "Legal notice"
	}
	return renderModalBox(m.width, title, body)
}
