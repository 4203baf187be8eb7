package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) renderCommentsModal() string {
	if m.commentsStage == commentsStageThread {
		body := lipgloss.JoinVertical(lipgloss.Left,
			"The thread lives outside the terminal.",
			"",
			lipgloss.NewStyle().Underline(true).Render(m.threadURL),
			"",
			styleMuted().Render("enter: open in browser   y: copy URL   esc: back"),
		)
		return renderModalBox(m.width, "Comments", body)
	}

	body := m.commentsList.View() + "\n" +
		styleMuted().Render("enter: choose   esc: close")
	return renderModalBox(m.width, "Comments", body)
}
