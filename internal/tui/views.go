package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

func (m appModel) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch {
	case m.st.AdminPanelOpen():
		body = m.renderAdmin()
	case m.st.SelectedPost() != nil:
		body = m.renderDetail()
	default:
		body = m.renderView()
	}

	if m.st.CommentsOpen() && !m.st.AdminPanelOpen() {
		// The drawer slides in next to whatever is showing; it does not
		// replace the detail modal.
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderComments())
	}

	if m.st.LoginOpen() {
		body = lipgloss.Place(m.width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center, m.renderLogin())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m appModel) renderHeader() string {
	cfg := m.st.Config()

	title := cfg.SiteTitle
	if cfg.EnableGlitch {
		title = glitchText(title)
	} else {
		title = siteTitleStyle.Render(title)
	}

	var tabs []string
	for i, v := range models.Views() {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.st.View() {
			tabs = append(tabs, navActiveStyle.Render(label))
		} else {
			tabs = append(tabs, navInactiveStyle.Render(label))
		}
	}

	who := "Member Login [l]"
	if u := m.st.CurrentUser(); u != nil {
		who = avatarBadge(u.AvatarColor) + " " + u.Username
	}
	if m.st.AdminLoggedIn() {
		who += "  " + helpStyle.Render("admin [a]")
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", strings.Join(tabs, " "), "  ", helpStyle.Render(who))

	if fx := m.renderSoundEffects(); fx != "" {
		return lipgloss.JoinVertical(lipgloss.Left, bar, fx)
	}
	return bar
}

// renderSoundEffects draws the live click overlays as a one-line strip. Each
// effect's rotation survives only as a little tilt marker; terminals don't
// rotate text.
func (m appModel) renderSoundEffects() string {
	effects := m.st.SoundEffects()
	if len(effects) == 0 {
		return ""
	}
	parts := make([]string, len(effects))
	for i, e := range effects {
		tilt := "/"
		if e.Rotation < 0 {
			tilt = "\\"
		}
		parts[i] = soundEffectStyle.Render(tilt + " " + e.Text)
	}
	return strings.Join(parts, " ")
}

func (m appModel) renderView() string {
	switch m.st.View() {
	case models.ViewHome:
		return m.renderHome()
	case models.ViewBlogs:
		return m.renderBlogs()
	case models.ViewVideos:
		return m.renderVideos()
	case models.ViewAbout:
		return m.renderAbout()
	}
	return ""
}

func (m appModel) renderHome() string {
	cfg := m.st.Config()

	hero := lipgloss.JoinVertical(lipgloss.Left,
		heroStyle.Render("ISSUE #42: ORIGIN STORY"),
		sectionTitleStyle.Render("INTO THE UNKNOWN"),
		excerptStyle.Render(`"Anyone can wear the mask. But how you wear it... that's what makes you a hero."`),
	)

	feed := m.renderFeed("LATEST DROPS", m.visiblePosts())

	strip := "CREATIVE BOLD FAST LOUD"
	if cfg.EnableAnimations {
		strip = "~ " + strip + " ~"
	}
	about := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("WHO AM I?"),
		excerptStyle.Render("Just your friendly neighborhood developer building webs(ites) and dodging bugs."),
		helpStyle.Render(strip),
	)

	return lipgloss.JoinVertical(lipgloss.Left, hero, "", feed, "", about)
}

func (m appModel) renderBlogs() string {
	return m.renderFeed("ALL ISSUES", m.visiblePosts())
}

func (m appModel) renderFeed(title string, posts []models.Post) string {
	cfg := m.st.Config()
	rows := []string{sectionTitleStyle.Render(title)}
	for i, p := range posts {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		rows = append(rows, marker+m.renderPanel(p, cfg))
	}
	rows = append(rows, helpStyle.Render("enter read  c comments"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderPanel is the feed's "render(post) -> visual" surface.
func (m appModel) renderPanel(p models.Post, cfg models.AdminConfig) string {
	title := p.Title
	switch {
	case p.Effect == models.EffectGlitch && cfg.EnableGlitch:
		title = glitchText(title)
	case p.Effect == models.EffectPulse && cfg.EnableAnimations:
		title = cursorStyle.Render("* " + title + " *")
	case p.Effect == models.EffectShake && cfg.EnableAnimations:
		title = cursorStyle.Render("~" + title + "~")
	default:
		title = lipgloss.NewStyle().Bold(true).Foreground(accentColor(p.Color)).Render(title)
	}

	head := lipgloss.JoinHorizontal(lipgloss.Center,
		categoryStyle.Render(string(p.Category)), " ", dateStyle.Render(p.Date))

	return panelStyle(p).Render(lipgloss.JoinVertical(lipgloss.Left,
		head, title, excerptStyle.Render(p.Excerpt)))
}

func (m appModel) renderVideos() string {
	rows := []string{
		sectionTitleStyle.Render("SURVEILLANCE FEED"),
		helpStyle.Render("LIVE FROM THE MULTIVERSE"),
		"",
	}
	for _, v := range m.st.Videos() {
		rows = append(rows, fmt.Sprintf("%s %s %s",
			cursorStyle.Render("▶"),
			valueStyle.Render(v.Title),
			helpStyle.Render(v.Views+" views")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m appModel) renderAbout() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("JOULES"),
		valueStyle.Render("ORIGIN: QUEENS, EARTH-616"),
		"",
		labelStyle.Render("MISSION")+"  "+valueStyle.Render("Disrupt the boring web."),
		labelStyle.Render("WEAKNESS")+" "+valueStyle.Render("Good bagels."),
		"",
		renderStat("STRENGTH", 7),
		renderStat("AGILITY", 9),
		renderStat("CODING", 10),
	)
}

func renderStat(name string, level int) string {
	bar := strings.Repeat("█", level) + strings.Repeat("░", 10-level)
	return fmt.Sprintf("%-9s %s", labelStyle.Render(name), sectionTitleStyle.Render(bar))
}

func (m appModel) renderFooter() string {
	var parts []string
	if m.flash != "" {
		parts = append(parts, flashStyle.Render(m.flash))
	}
	switch {
	case m.st.LoginOpen():
		parts = append(parts, helpStyle.Render("tab next field  ←/→ login/signup  enter submit  esc close"))
	case m.st.AdminPanelOpen():
		parts = append(parts, helpStyle.Render("tab content/settings  ↑/↓ rows  [ ] post  enter edit  ctrl+s save  ctrl+l logout  esc close"))
	case m.st.CommentsOpen():
		parts = append(parts, helpStyle.Render("type to comment  enter send  esc close"))
	case m.st.SelectedPost() != nil:
		parts = append(parts, helpStyle.Render("c comments  esc back"))
	default:
		parts = append(parts, helpStyle.Render("1-4 views  ↑/↓ browse  enter read  c comments  l login  a admin  q quit"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// glitchText splits a string into alternating comic colors, an RGB-split
// look without moving parts.
func glitchText(s string) string {
	var b strings.Builder
	for i, r := range s {
		st := lipgloss.NewStyle().Foreground(comicCyan)
		if i%2 == 1 {
			st = lipgloss.NewStyle().Foreground(comicMagenta)
		}
		b.WriteString(st.Bold(true).Render(string(r)))
	}
	return b.String()
}

// avatarBadge renders a user's avatar color tag as a colored dot.
func avatarBadge(color string) string {
	c, ok := map[string]lipgloss.Color{
		"red":    lipgloss.Color("#ef4444"),
		"blue":   lipgloss.Color("#3b82f6"),
		"green":  lipgloss.Color("#22c55e"),
		"yellow": comicYellow,
		"purple": lipgloss.Color("#a855f7"),
		"pink":   lipgloss.Color("#ec4899"),
		"gray":   comicGray,
	}[color]
	if !ok {
		c = comicWhite
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}
