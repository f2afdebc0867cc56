package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

// updateAdmin handles keys while the admin drawer is open.
//
// Content edits land in the local draft only; nothing reaches the shared
// collection until save. Settings edits apply immediately, with no draft step
// in between.
func (m appModel) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.draft == nil {
		// Drawer opened without a snapshot; take one now.
		m.openAdminDraft()
	}

	if m.editing {
		return m.updateAdminEditing(msg)
	}

	switch msg.String() {
	case "esc":
		// Closing without saving discards the draft silently.
		m.st.CloseAdminPanel()
		m.closeAdminDraft()
		return m, nil
	case "tab":
		if m.adminTab == tabContent {
			m.adminTab = tabSettings
		} else {
			m.adminTab = tabContent
		}
		return m, nil
	case "ctrl+s":
		m.st.ReplacePosts(m.draft.Posts())
		m.flash = "Changes saved to the multiverse!"
		return m, m.clearFlashAfter()
	case "ctrl+l":
		m.st.Logout()
		m.closeAdminDraft()
		return m, nil
	}

	if m.adminTab == tabSettings {
		return m.updateAdminSettings(msg)
	}
	return m.updateAdminContent(msg)
}

func (m appModel) updateAdminContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
	case "down", "j":
		if m.fieldIdx < fieldCount-1 {
			m.fieldIdx++
		}
	case "[", "pgup":
		if m.postIdx > 0 {
			m.postIdx--
			m.fieldIdx = fieldTitle
		}
	case "]", "pgdown":
		if m.postIdx < m.draft.Len()-1 {
			m.postIdx++
			m.fieldIdx = fieldTitle
		}
	case "left", "h":
		m.cycleChoice(-1)
	case "right", "l":
		m.cycleChoice(1)
	case "enter":
		if m.fieldIdx.freeText() {
			m.beginFieldEdit()
		} else {
			m.cycleChoice(1)
		}
	}
	return m, nil
}

// beginFieldEdit primes the right widget with the draft's current value.
func (m *appModel) beginFieldEdit() {
	post := m.draft.Post(m.postIdx)
	m.editing = true
	if m.fieldIdx == fieldContent {
		m.contentArea.SetValue(post.Content)
		m.contentArea.Focus()
		return
	}
	switch m.fieldIdx {
	case fieldTitle:
		m.fieldInput.SetValue(post.Title)
	case fieldDate:
		m.fieldInput.SetValue(post.Date)
	case fieldExcerpt:
		m.fieldInput.SetValue(post.Excerpt)
	case fieldImage:
		m.fieldInput.SetValue(post.Image)
	}
	m.fieldInput.CursorEnd()
	m.fieldInput.Focus()
}

// updateAdminEditing routes keys into the active text widget and mirrors
// every keystroke into the draft, matching the form's field-level updates.
func (m appModel) updateAdminEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" || (key == "enter" && (m.adminTab == tabSettings || m.fieldIdx != fieldContent)) {
		m.editing = false
		m.fieldInput.Blur()
		m.contentArea.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.adminTab == tabSettings {
		m.fieldInput, cmd = m.fieldInput.Update(msg)
		// Settings are applied immediately, keystroke by keystroke.
		m.st.SetSiteTitle(m.fieldInput.Value())
		return m, cmd
	}

	id := m.draft.Post(m.postIdx).ID
	if m.fieldIdx == fieldContent {
		m.contentArea, cmd = m.contentArea.Update(msg)
		m.draft.SetContent(id, m.contentArea.Value())
		return m, cmd
	}

	m.fieldInput, cmd = m.fieldInput.Update(msg)
	v := m.fieldInput.Value()
	switch m.fieldIdx {
	case fieldTitle:
		m.draft.SetTitle(id, v)
	case fieldDate:
		m.draft.SetDate(id, v)
	case fieldExcerpt:
		m.draft.SetExcerpt(id, v)
	case fieldImage:
		m.draft.SetImage(id, v)
	}
	return m, cmd
}

// cycleChoice steps an enumerated field through its fixed allowed values.
func (m *appModel) cycleChoice(dir int) {
	post := m.draft.Post(m.postIdx)
	switch m.fieldIdx {
	case fieldCategory:
		m.draft.SetCategory(post.ID, cycle(models.Categories(), post.Category, dir))
	case fieldSize:
		m.draft.SetSize(post.ID, cycle(models.Sizes(), post.Size, dir))
	case fieldColor:
		m.draft.SetColor(post.ID, cycle(models.Colors(), post.Color, dir))
	case fieldEffect:
		m.draft.SetEffect(post.ID, cycle(models.Effects(), post.Effect, dir))
	}
}

func cycle[T comparable](values []T, current T, dir int) T {
	for i, v := range values {
		if v == current {
			return values[(i+dir+len(values))%len(values)]
		}
	}
	return values[0]
}

func (m appModel) updateAdminSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.st.Config()
	switch msg.String() {
	case "up", "k":
		if m.settingsIdx > 0 {
			m.settingsIdx--
		}
	case "down", "j":
		if m.settingsIdx < rowCount-1 {
			m.settingsIdx++
		}
	case "enter", " ":
		switch m.settingsIdx {
		case rowSiteTitle:
			if msg.String() == "enter" {
				m.editing = true
				m.fieldInput.SetValue(cfg.SiteTitle)
				m.fieldInput.CursorEnd()
				m.fieldInput.Focus()
			}
		case rowSoundEffects:
			m.st.SetSoundEffects(!cfg.EnableSoundEffects)
		case rowAnimations:
			m.st.SetAnimations(!cfg.EnableAnimations)
		case rowGlitch:
			m.st.SetGlitch(!cfg.EnableGlitch)
		}
	}
	return m, nil
}
