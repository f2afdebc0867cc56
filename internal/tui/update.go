package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joule-J/joules-comic-blog--1/internal/apperr"
	"github.com/Joule-J/joules-comic-blog--1/internal/auth"
	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case effectExpireMsg:
		m.st.ExpireSoundEffect(msg.id)
		return m, nil

	case flashClearMsg:
		m.flash = ""
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if eff, ok := m.st.TriggerSoundEffect(msg.X, msg.Y); ok {
				return m, m.expireEffectAfter(eff.ID)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Route keys to the topmost interactive surface. Fixed stacking:
		// login above admin above post detail above comments.
		switch {
		case m.st.LoginOpen():
			return m.updateLogin(msg)
		case m.st.AdminPanelOpen():
			return m.updateAdmin(msg)
		case m.st.SelectedPost() != nil:
			return m.updateDetail(msg)
		case m.st.CommentsOpen():
			return m.updateComments(msg)
		default:
			return m.updateMain(msg)
		}
	}

	return m, nil
}

// =========================================================================
// Main view
// =========================================================================

func (m appModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.st.SetView(models.ViewHome)
		m.cursor = 0
	case "2":
		m.st.SetView(models.ViewBlogs)
		m.cursor = 0
	case "3":
		m.st.SetView(models.ViewVideos)
		m.cursor = 0
	case "4":
		m.st.SetView(models.ViewAbout)
		m.cursor = 0
	case "tab":
		views := models.Views()
		for i, v := range views {
			if v == m.st.View() {
				m.st.SetView(views[(i+1)%len(views)])
				break
			}
		}
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visiblePosts())-1 {
			m.cursor++
		}
	case "enter":
		if posts := m.visiblePosts(); m.cursor < len(posts) {
			m.st.SelectPost(posts[m.cursor].ID)
		}
	case "c":
		// The panel's comment shortcut opens both surfaces at once.
		if posts := m.visiblePosts(); m.cursor < len(posts) {
			m.st.SelectPost(posts[m.cursor].ID)
		}
		m.st.OpenComments()
		m.commentInput.Focus()
	case "l":
		m.st.OpenUserLogin()
		m.resetLoginForm()
	case "a":
		m.st.OpenAdminLogin()
		if m.st.AdminPanelOpen() {
			m.openAdminDraft()
		} else if m.st.LoginOpen() {
			m.resetLoginForm()
		}
	}
	return m, nil
}

// visiblePosts returns the posts the active view renders: the home feed shows
// the latest four drops, the blogs view shows everything.
func (m appModel) visiblePosts() []models.Post {
	posts := m.st.Posts()
	if m.st.View() == models.ViewHome && len(posts) > 4 {
		return posts[:4]
	}
	if m.st.View() == models.ViewVideos || m.st.View() == models.ViewAbout {
		return nil
	}
	return posts
}

// =========================================================================
// Login modal
// =========================================================================

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.st.AuthMode()

	switch msg.String() {
	case "esc":
		m.st.CloseLogin()
		return m, nil
	case "tab", "down":
		m.cycleLoginFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.cycleLoginFocus(-1)
		return m, nil
	case "left", "right":
		if mode == models.AuthModeUser {
			m.signup = !m.signup
			m.authErr = ""
			if !m.signup && m.loginFocus == loginFieldEmail {
				m.setLoginFocus(loginFieldUsername)
			}
		}
		return m, nil
	case "enter":
		return m.submitLogin(mode)
	}

	var cmd tea.Cmd
	switch m.loginFocus {
	case loginFieldUsername:
		m.username, cmd = m.username.Update(msg)
	case loginFieldEmail:
		m.email, cmd = m.email.Update(msg)
	case loginFieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitLogin(mode models.AuthMode) (tea.Model, tea.Cmd) {
	creds := auth.Credentials{
		Username: m.username.Value(),
		Password: m.password.Value(),
		Email:    m.email.Value(),
	}
	if err := m.st.Authenticate(mode, creds, m.signup); err != nil {
		m.authErr = authMessage(err)
		return m, nil
	}
	// Success closes the modal and clears the form.
	m.resetLoginForm()
	if m.st.AdminPanelOpen() {
		m.openAdminDraft()
	}
	return m, nil
}

// authMessage maps auth sentinels to the modal's fixed rejection texts.
func authMessage(err error) string {
	switch {
	case errors.Is(err, apperr.ErrAccessDenied):
		return "ACCESS DENIED. Invalid Credentials."
	case errors.Is(err, apperr.ErrEmailRequired):
		return "Email is required for registration."
	case errors.Is(err, apperr.ErrMissingCredentials):
		return "Please fill in all fields."
	}
	return err.Error()
}

func (m *appModel) cycleLoginFocus(dir int) {
	fields := []loginField{loginFieldUsername, loginFieldPassword}
	if m.signup && m.st.AuthMode() == models.AuthModeUser {
		fields = []loginField{loginFieldEmail, loginFieldUsername, loginFieldPassword}
	}
	cur := 0
	for i, f := range fields {
		if f == m.loginFocus {
			cur = i
			break
		}
	}
	m.setLoginFocus(fields[(cur+dir+len(fields))%len(fields)])
}

func (m *appModel) setLoginFocus(f loginField) {
	m.loginFocus = f
	m.username.Blur()
	m.email.Blur()
	m.password.Blur()
	switch f {
	case loginFieldUsername:
		m.username.Focus()
	case loginFieldEmail:
		m.email.Focus()
	case loginFieldPassword:
		m.password.Focus()
	}
}

// =========================================================================
// Post detail modal
// =========================================================================

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.st.CommentsOpen() {
		// The drawer sits above the modal; it takes the keys.
		return m.updateComments(msg)
	}
	switch msg.String() {
	case "esc", "backspace", "q":
		m.st.ClearSelectedPost()
	case "c":
		// Opening the drawer leaves the modal where it is.
		m.st.OpenComments()
		m.commentInput.Focus()
	}
	return m, nil
}

// =========================================================================
// Comments drawer
// =========================================================================

func (m appModel) updateComments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.st.CloseComments()
		m.commentInput.Blur()
		return m, nil
	case "enter":
		if _, ok := m.st.AddComment(m.commentInput.Value()); ok {
			m.commentInput.SetValue("")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}
