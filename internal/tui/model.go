// Package tui renders the comic blog in the terminal.
//
// The package is a pure rendering boundary: it holds only transient widget
// state (text inputs, cursors, the admin draft) and routes every logical
// transition through the store's mutation methods. State it displays is read
// back from the store on each frame.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joule-J/joules-comic-blog--1/internal/editor"
	"github.com/Joule-J/joules-comic-blog--1/internal/store"
)

// Options configures the terminal program.
type Options struct {
	// SoundEffectTTL is how long a click overlay stays on screen.
	SoundEffectTTL time.Duration
}

// effectExpireMsg removes a click overlay once its lifetime is up.
type effectExpireMsg struct {
	id int64
}

// flashClearMsg clears the one-line status flash.
type flashClearMsg struct{}

type loginField int

const (
	loginFieldUsername loginField = iota
	loginFieldEmail
	loginFieldPassword
)

type adminTab int

const (
	tabContent adminTab = iota
	tabSettings
)

// postField enumerates the editable fields of a post in the admin form, in
// display order. The first five are free text; the rest are choice controls.
type postField int

const (
	fieldTitle postField = iota
	fieldDate
	fieldExcerpt
	fieldContent
	fieldImage
	fieldCategory
	fieldSize
	fieldColor
	fieldEffect

	fieldCount
)

func (f postField) freeText() bool { return f <= fieldImage }

func (f postField) label() string {
	switch f {
	case fieldTitle:
		return "Title"
	case fieldDate:
		return "Date"
	case fieldExcerpt:
		return "Excerpt"
	case fieldContent:
		return "Full Content"
	case fieldImage:
		return "Image URL"
	case fieldCategory:
		return "Category"
	case fieldSize:
		return "Size"
	case fieldColor:
		return "Accent Color"
	case fieldEffect:
		return "Visual Effect"
	}
	return ""
}

type settingsRow int

const (
	rowSiteTitle settingsRow = iota
	rowSoundEffects
	rowAnimations
	rowGlitch

	rowCount
)

type appModel struct {
	st  *store.Store
	ttl time.Duration

	width  int
	height int

	// feed cursor over the posts of the active view.
	cursor int

	// login modal widgets.
	signup     bool
	loginFocus loginField
	username   textinput.Model
	email      textinput.Model
	password   textinput.Model
	authErr    string

	// comments drawer input.
	commentInput textinput.Model

	// admin drawer state. The draft exists only while the drawer is open;
	// closing without saving drops it.
	adminTab    adminTab
	draft       *editor.Draft
	postIdx     int
	fieldIdx    postField
	settingsIdx settingsRow
	editing     bool
	fieldInput  textinput.Model
	contentArea textarea.Model

	flash string
}

// New builds the terminal model over the given store.
func New(st *store.Store, opts Options) tea.Model {
	ttl := opts.SoundEffectTTL
	if ttl <= 0 {
		ttl = time.Second
	}

	m := appModel{
		st:     st,
		ttl:    ttl,
		width:  100,
		height: 30,
	}

	m.username = textinput.New()
	m.username.Placeholder = "Username"
	m.username.CharLimit = 64
	m.username.Width = 32

	m.email = textinput.New()
	m.email.Placeholder = "hero@webmail.com"
	m.email.CharLimit = 128
	m.email.Width = 32

	m.password = textinput.New()
	m.password.Placeholder = "Password"
	m.password.EchoMode = textinput.EchoPassword
	m.password.CharLimit = 64
	m.password.Width = 32

	m.commentInput = textinput.New()
	m.commentInput.Placeholder = "Say something cool..."
	m.commentInput.CharLimit = 200
	m.commentInput.Width = 36

	m.fieldInput = textinput.New()
	m.fieldInput.CharLimit = 0
	m.fieldInput.Width = 48

	m.contentArea = textarea.New()
	m.contentArea.Placeholder = "Write the full story here..."
	m.contentArea.CharLimit = 0
	m.contentArea.SetWidth(56)
	m.contentArea.SetHeight(8)
	m.contentArea.ShowLineNumbers = false

	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// openAdminDraft snapshots the shared post collection into a fresh draft.
// Called whenever the drawer opens; a previous unsaved draft is gone by then.
func (m *appModel) openAdminDraft() {
	m.draft = editor.New(m.st.Posts())
	m.adminTab = tabContent
	m.postIdx = 0
	m.fieldIdx = fieldTitle
	m.settingsIdx = rowSiteTitle
	m.editing = false
}

// closeAdminDraft drops the draft. Unsaved edits are lost silently.
func (m *appModel) closeAdminDraft() {
	m.draft = nil
	m.editing = false
	m.fieldInput.Blur()
	m.contentArea.Blur()
}

func (m *appModel) resetLoginForm() {
	m.username.SetValue("")
	m.email.SetValue("")
	m.password.SetValue("")
	m.authErr = ""
	m.signup = false
	m.loginFocus = loginFieldUsername
	m.username.Focus()
	m.email.Blur()
	m.password.Blur()
}

func (m appModel) expireEffectAfter(id int64) tea.Cmd {
	return tea.Tick(m.ttl, func(time.Time) tea.Msg { return effectExpireMsg{id: id} })
}

func (m appModel) clearFlashAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return flashClearMsg{} })
}
