package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

func (m appModel) renderLogin() string {
	mode := m.st.AuthMode()

	var rows []string
	if mode == models.AuthModeAdmin {
		rows = append(rows,
			errorStyle.Render("RESTRICTED AREA"),
			helpStyle.Render("AUTHORIZED PERSONNEL ONLY"),
			"",
		)
	} else {
		heading := "WELCOME BACK"
		sub := "Access your dashboard."
		if m.signup {
			heading = "JOIN THE SQUAD"
			sub = "Create your hero identity."
		}
		loginTab := navActiveStyle.Render("LOGIN")
		signupTab := navInactiveStyle.Render("SIGN UP")
		if m.signup {
			loginTab = navInactiveStyle.Render("LOGIN")
			signupTab = navActiveStyle.Render("SIGN UP")
		}
		rows = append(rows,
			sectionTitleStyle.Render(heading),
			helpStyle.Render(sub),
			lipgloss.JoinHorizontal(lipgloss.Center, loginTab, " ", signupTab),
			"",
		)
	}

	if mode == models.AuthModeUser && m.signup {
		rows = append(rows, labelStyle.Render("Email")+"\n"+m.email.View())
	}
	rows = append(rows, labelStyle.Render("Username")+"\n"+m.username.View())
	rows = append(rows, labelStyle.Render("Password")+"\n"+m.password.View())

	if m.authErr != "" {
		rows = append(rows, "", errorStyle.Render(m.authErr))
	}

	submit := "ENTER"
	if mode == models.AuthModeAdmin {
		submit = "AUTHENTICATE"
	} else if m.signup {
		submit = "CREATE ACCOUNT"
	}
	rows = append(rows, "", navActiveStyle.Render("[ "+submit+" ]"))

	style := modalStyle
	if mode == models.AuthModeAdmin {
		style = adminModalStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m appModel) renderDetail() string {
	p := m.st.SelectedPost()
	if p == nil {
		return ""
	}

	cfg := m.st.Config()
	title := p.Title
	if p.Effect == models.EffectGlitch && cfg.EnableGlitch {
		title = glitchText(title)
	} else {
		title = lipgloss.NewStyle().Bold(true).Foreground(accentColor(p.Color)).Render(title)
	}

	content := p.Content
	if content == "" {
		content = p.Excerpt
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			categoryStyle.Render(string(p.Category)), " ", dateStyle.Render(p.Date)),
		title,
		helpStyle.Render(p.Image),
		"",
		excerptStyle.Width(62).Render(strings.TrimSpace(content)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accentColor(p.Color)).
		Padding(1, 2).
		Render(body)
}

func (m appModel) renderComments() string {
	rows := []string{sectionTitleStyle.Render("THE CHATTER")}

	comments := m.st.Comments()
	if len(comments) == 0 {
		rows = append(rows, helpStyle.Render("Be the first to say something!"))
	}
	for _, c := range comments {
		rows = append(rows,
			commentBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				avatarBadge(c.AvatarColor)+" "+labelStyle.Render(c.User),
				excerptStyle.Width(36).Render(c.Text))))
	}

	rows = append(rows, "", m.commentInput.View())

	return drawerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m appModel) renderAdmin() string {
	if m.draft == nil {
		return ""
	}

	contentTab := navInactiveStyle.Render("Content")
	settingsTab := navInactiveStyle.Render("Effects & Config")
	if m.adminTab == tabContent {
		contentTab = navActiveStyle.Render("Content")
	} else {
		settingsTab = navActiveStyle.Render("Effects & Config")
	}

	rows := []string{
		sectionTitleStyle.Render("ADMIN CONSOLE") + "  " + helpStyle.Render("Joules Blog Management"),
		lipgloss.JoinHorizontal(lipgloss.Center, contentTab, " ", settingsTab),
		"",
	}

	if m.adminTab == tabContent {
		rows = append(rows, m.renderAdminContent()...)
	} else {
		rows = append(rows, m.renderAdminSettings()...)
	}

	return adminModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m appModel) renderAdminContent() []string {
	post := m.draft.Post(m.postIdx)

	rows := []string{
		labelStyle.Render(fmt.Sprintf("Edit Posts — #%s (%d/%d)", post.ID, m.postIdx+1, m.draft.Len())),
		"",
	}

	for f := fieldTitle; f < fieldCount; f++ {
		label := f.label()
		value := m.fieldValue(post, f)
		if !f.freeText() {
			value = "< " + value + " >"
		}

		line := fmt.Sprintf("%-13s %s", label, valueStyle.Render(truncate(value, 52)))
		if f == m.fieldIdx {
			if m.editing {
				widget := m.fieldInput.View()
				if f == fieldContent {
					widget = m.contentArea.View()
				}
				line = selectedRowStyle.Render(label) + "\n" + widget
			} else {
				line = selectedRowStyle.Render(fmt.Sprintf("%-13s", label)) + " " + valueStyle.Render(truncate(value, 52))
			}
		}
		rows = append(rows, line)
	}

	return rows
}

func (m appModel) fieldValue(p models.Post, f postField) string {
	switch f {
	case fieldTitle:
		return p.Title
	case fieldDate:
		return p.Date
	case fieldExcerpt:
		return p.Excerpt
	case fieldContent:
		return strings.ReplaceAll(p.Content, "\n", " ")
	case fieldImage:
		return p.Image
	case fieldCategory:
		return string(p.Category)
	case fieldSize:
		return string(p.Size)
	case fieldColor:
		return string(p.Color)
	case fieldEffect:
		return string(p.Effect)
	}
	return ""
}

func (m appModel) renderAdminSettings() []string {
	cfg := m.st.Config()

	row := func(r settingsRow, label, value string) string {
		line := fmt.Sprintf("%-14s %s", label, valueStyle.Render(value))
		if r == m.settingsIdx {
			if m.editing && r == rowSiteTitle {
				return selectedRowStyle.Render(label) + "\n" + m.fieldInput.View()
			}
			return selectedRowStyle.Render(fmt.Sprintf("%-14s", label)) + " " + valueStyle.Render(value)
		}
		return line
	}

	toggle := func(on bool) string {
		if on {
			return "[x] on"
		}
		return "[ ] off"
	}

	return []string{
		labelStyle.Render("Global Settings"),
		row(rowSiteTitle, "Site Name", cfg.SiteTitle),
		"",
		labelStyle.Render("Visual Effects"),
		row(rowSoundEffects, "Sound Effects", toggle(cfg.EnableSoundEffects)+"  "+helpStyle.Render(`show "BAM!", "POW!" on click`)),
		row(rowAnimations, "Animations", toggle(cfg.EnableAnimations)),
		row(rowGlitch, "Glitch Effect", toggle(cfg.EnableGlitch)),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
