package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
	"github.com/Joule-J/joules-comic-blog--1/internal/store"
	"github.com/Joule-J/joules-comic-blog--1/internal/testutil"
)

func newTestModel(t *testing.T) (appModel, *store.Store) {
	t.Helper()
	st, _, _ := testutil.NewStore(t)
	m := New(st, Options{SoundEffectTTL: time.Second})
	return m.(appModel), st
}

// keyMsg builds the key message for a named key or a plain character.
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press feeds each key through Update and returns the resulting model.
func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(appModel)
	}
	return m
}

// typeText feeds a string one character at a time.
func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

// loginAsAdmin walks the real key sequence: open the admin login, fill both
// fields, submit.
func loginAsAdmin(t *testing.T, m appModel) appModel {
	t.Helper()
	m = press(t, m, "a")
	m = typeText(t, m, "admin")
	m = press(t, m, "tab")
	m = typeText(t, m, "password")
	return press(t, m, "enter")
}

func TestModel_ViewKeys(t *testing.T) {
	m, st := newTestModel(t)

	m = press(t, m, "3")
	if st.View() != models.ViewVideos {
		t.Errorf("view = %q, want %q", st.View(), models.ViewVideos)
	}

	m = press(t, m, "tab")
	if st.View() != models.ViewAbout {
		t.Errorf("tab should advance to %q, got %q", models.ViewAbout, st.View())
	}

	press(t, m, "tab")
	if st.View() != models.ViewHome {
		t.Errorf("tab should wrap to %q, got %q", models.ViewHome, st.View())
	}
}

func TestModel_AdminLoginRejection(t *testing.T) {
	m, st := newTestModel(t)

	m = press(t, m, "a")
	if !st.LoginOpen() {
		t.Fatal("a should open the admin login modal")
	}
	m = typeText(t, m, "admin")
	m = press(t, m, "tab")
	m = typeText(t, m, "hunter2")
	m = press(t, m, "enter")

	if m.authErr != "ACCESS DENIED. Invalid Credentials." {
		t.Errorf("authErr = %q", m.authErr)
	}
	if st.AdminPanelOpen() || st.AdminLoggedIn() {
		t.Error("failed auth must not open the drawer")
	}
	if !st.LoginOpen() {
		t.Error("the modal stays open for another attempt")
	}
}

func TestModel_AdminLoginOpensDraft(t *testing.T) {
	m, st := newTestModel(t)

	m = loginAsAdmin(t, m)
	if !st.AdminLoggedIn() || !st.AdminPanelOpen() {
		t.Fatal("valid credentials should land in the drawer")
	}
	if st.LoginOpen() {
		t.Error("the modal should be gone")
	}
	if m.draft == nil {
		t.Fatal("opening the drawer should snapshot a draft")
	}
	if got, want := m.draft.Len(), len(st.Posts()); got != want {
		t.Errorf("draft length = %d, want %d", got, want)
	}
}

func TestModel_UnsavedDraftDiscardedOnClose(t *testing.T) {
	m, st := newTestModel(t)
	m = loginAsAdmin(t, m)

	original := st.Posts()

	// Third post, title field, start editing, type into it.
	m = press(t, m, "]", "]", "enter")
	if !m.editing {
		t.Fatal("enter on a free-text field should start editing")
	}
	m = typeText(t, m, "!!")

	edited := m.draft.Post(2).Title
	if edited == original[2].Title {
		t.Fatal("keystrokes should land in the draft")
	}
	if st.Posts()[2].Title != original[2].Title {
		t.Fatal("the shared collection must be untouched before save")
	}

	// Stop editing, then close the drawer without saving.
	m = press(t, m, "esc", "esc")
	if st.AdminPanelOpen() {
		t.Fatal("esc should close the drawer")
	}
	if m.draft != nil {
		t.Error("the draft should be dropped on close")
	}
	if st.Posts()[2].Title != original[2].Title {
		t.Error("closing without saving must change nothing")
	}

	// Reopening snapshots afresh; the lost edit is gone.
	m = press(t, m, "a")
	if st.LoginOpen() {
		t.Fatal("an authenticated admin should skip the modal")
	}
	if m.draft.Post(2).Title != original[2].Title {
		t.Error("a fresh draft should match the shared collection, not the lost edit")
	}
}

func TestModel_SaveReplacesPosts(t *testing.T) {
	m, st := newTestModel(t)
	m = loginAsAdmin(t, m)

	m = press(t, m, "enter")
	m = typeText(t, m, " XL")
	m = press(t, m, "esc", "ctrl+s")

	want := m.draft.Post(0).Title
	if got := st.Posts()[0].Title; got != want {
		t.Errorf("saved title = %q, want %q", got, want)
	}
	if m.flash == "" {
		t.Error("save should raise the status flash")
	}
}

func TestModel_EnumFieldCycles(t *testing.T) {
	m, st := newTestModel(t)
	m = loginAsAdmin(t, m)

	before := m.draft.Post(0).Category

	// Move down to the category row and cycle it once.
	m = press(t, m, "down", "down", "down", "down", "down", "enter")
	after := m.draft.Post(0).Category
	if after == before {
		t.Fatal("enter on a choice field should cycle its value")
	}
	if !after.Valid() {
		t.Errorf("cycled category %q is out of set", after)
	}
	if st.Posts()[0].Category != before {
		t.Error("cycling must stay in the draft until save")
	}
}

func TestModel_AdminLogout(t *testing.T) {
	m, st := newTestModel(t)
	m = loginAsAdmin(t, m)

	m = press(t, m, "ctrl+l")
	if st.AdminLoggedIn() || st.AdminPanelOpen() {
		t.Error("ctrl+l should log out and close the drawer")
	}
	if m.draft != nil {
		t.Error("logout drops the draft")
	}
}

func TestModel_SettingsToggleImmediate(t *testing.T) {
	m, st := newTestModel(t)
	m = loginAsAdmin(t, m)

	m = press(t, m, "tab", "down", "enter")
	if st.Config().EnableSoundEffects {
		t.Error("toggling sound effects should hit the store at once")
	}
	press(t, m, "down", "enter")
	if st.Config().EnableAnimations {
		t.Error("toggling animations should hit the store at once")
	}
}

func TestModel_CommentFromFeed(t *testing.T) {
	m, st := newTestModel(t)

	m = press(t, m, "c")
	if st.SelectedPost() == nil || !st.CommentsOpen() {
		t.Fatal("c should open the detail modal and the drawer together")
	}

	before := len(st.Comments())
	m = typeText(t, m, "great issue")
	m = press(t, m, "enter")

	comments := st.Comments()
	if len(comments) != before+1 {
		t.Fatalf("comment count = %d, want %d", len(comments), before+1)
	}
	if comments[0].Text != "great issue" {
		t.Errorf("comment text = %q", comments[0].Text)
	}
	if m.commentInput.Value() != "" {
		t.Error("the input should clear after a successful submit")
	}

	// Closing the drawer leaves the modal open.
	m = press(t, m, "esc")
	if st.CommentsOpen() {
		t.Error("esc should close the drawer")
	}
	if st.SelectedPost() == nil {
		t.Error("the detail modal stays")
	}
}

func TestModel_MouseClickTriggersEffect(t *testing.T) {
	m, st := newTestModel(t)

	click := tea.MouseMsg{X: 12, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	next, cmd := m.Update(click)
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("a click should schedule the effect's expiry")
	}
	effects := st.SoundEffects()
	if len(effects) != 1 {
		t.Fatalf("live effects = %d, want 1", len(effects))
	}
	if effects[0].X != 12 || effects[0].Y != 4 {
		t.Errorf("effect position = (%d,%d), want (12,4)", effects[0].X, effects[0].Y)
	}

	// The expiry message removes it.
	next, _ = m.Update(effectExpireMsg{id: effects[0].ID})
	m = next.(appModel)
	if len(st.SoundEffects()) != 0 {
		t.Error("the expire message should remove the effect")
	}

	// Disabled in config means no effect and no expiry command.
	st.SetSoundEffects(false)
	_, cmd = m.Update(click)
	if cmd != nil {
		t.Error("clicks are inert while the toggle is off")
	}
	if len(st.SoundEffects()) != 0 {
		t.Error("no effect may appear while the toggle is off")
	}
}

func TestModel_UserLoginFlow(t *testing.T) {
	m, st := newTestModel(t)

	m = press(t, m, "l")
	if !st.LoginOpen() || st.AuthMode() != models.AuthModeUser {
		t.Fatal("l should open the user login modal")
	}

	m = typeText(t, m, "miles")
	m = press(t, m, "tab")
	m = typeText(t, m, "webs")
	m = press(t, m, "enter")

	u := st.CurrentUser()
	if u == nil || u.Username != "miles" {
		t.Fatalf("current user = %+v, want miles", u)
	}
	if st.LoginOpen() {
		t.Error("the modal should close on success")
	}
}

func TestModel_SignupRequiresEmail(t *testing.T) {
	m, st := newTestModel(t)

	m = press(t, m, "l")
	// Switch to the signup tab, fill username and password only.
	m = press(t, m, "right")
	if !m.signup {
		t.Fatal("right should switch to the signup tab")
	}
	m = typeText(t, m, "gwen")
	m = press(t, m, "tab")
	m = typeText(t, m, "drums")
	m = press(t, m, "enter")

	if m.authErr != "Email is required for registration." {
		t.Errorf("authErr = %q", m.authErr)
	}
	if st.CurrentUser() != nil {
		t.Error("signup without email must not install a profile")
	}
}
