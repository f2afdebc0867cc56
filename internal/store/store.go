// Package store implements the root state container for the comic blog.
//
// The Store owns every piece of application state: the post collection, the
// shared comment stream, the site config, the active view, the session
// identity, and the overlay flags. All mutation goes through the closed set of
// methods defined here; rendering layers receive copies and must feed edits
// back through these entry points.
//
// Everything is synchronous and single-threaded: each method runs to
// completion inside the input event that triggered it. Nothing is persisted
// and nothing survives the process.
package store

import (
	"log/slog"
	"strings"

	"github.com/Joule-J/joules-comic-blog--1/internal/auth"
	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

// effectWords are the comic exclamations shown by the click overlay.
var effectWords = []string{"BAM!", "POW!", "ZAP!", "SNAP!", "CRASH!", "BOOM!", "SWISH!"}

// Options configures a new Store. Zero-value capabilities fall back to the
// system clock, a time-seeded randomness source, and a discarded logger.
type Options struct {
	Posts    []models.Post
	Comments []models.Comment
	Videos   []models.Video
	Config   models.AdminConfig

	Clock  Clock
	Rand   Rand
	Logger *slog.Logger
}

// Store is the single owning container for all application state.
type Store struct {
	logger *slog.Logger
	clock  Clock
	rand   Rand

	posts    []models.Post
	comments []models.Comment
	videos   []models.Video
	config   models.AdminConfig

	view          models.View
	currentUser   *models.UserProfile
	adminLoggedIn bool

	loginOpen      bool
	authMode       models.AuthMode
	adminPanelOpen bool
	selectedPost   *models.Post
	commentsOpen   bool

	effects []models.SoundEffect
}

// New builds a Store seeded with the given collections.
func New(opts Options) *Store {
	s := &Store{
		posts:    models.ClonePosts(opts.Posts),
		comments: append([]models.Comment(nil), opts.Comments...),
		videos:   append([]models.Video(nil), opts.Videos...),
		config:   opts.Config,
		view:     models.ViewHome,
		authMode: models.AuthModeUser,
		clock:    opts.Clock,
		rand:     opts.Rand,
		logger:   opts.Logger,
	}
	if s.clock == nil {
		s.clock = SystemClock()
	}
	if s.rand == nil {
		s.rand = SystemRand()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// =========================================================================
// Reads
// =========================================================================

// View returns the active top-level view.
func (s *Store) View() models.View { return s.view }

// Posts returns a copy of the shared post collection.
func (s *Store) Posts() []models.Post { return models.ClonePosts(s.posts) }

// Comments returns a copy of the shared comment stream, newest first.
func (s *Store) Comments() []models.Comment {
	return append([]models.Comment(nil), s.comments...)
}

// Videos returns a copy of the fixed video list.
func (s *Store) Videos() []models.Video {
	return append([]models.Video(nil), s.videos...)
}

// Config returns the current site config.
func (s *Store) Config() models.AdminConfig { return s.config }

// CurrentUser returns a copy of the logged-in profile, or nil for a guest.
func (s *Store) CurrentUser() *models.UserProfile {
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// AdminLoggedIn reports whether the admin identity is active.
func (s *Store) AdminLoggedIn() bool { return s.adminLoggedIn }

// LoginOpen reports whether the login modal is visible.
func (s *Store) LoginOpen() bool { return s.loginOpen }

// AuthMode returns the identity the login modal currently targets.
func (s *Store) AuthMode() models.AuthMode { return s.authMode }

// AdminPanelOpen reports whether the admin drawer is visible.
func (s *Store) AdminPanelOpen() bool { return s.adminPanelOpen }

// SelectedPost returns a copy of the post open in the detail modal, or nil.
func (s *Store) SelectedPost() *models.Post {
	if s.selectedPost == nil {
		return nil
	}
	p := *s.selectedPost
	return &p
}

// CommentsOpen reports whether the comments drawer is visible. The drawer is
// independent of which post, if any, is selected.
func (s *Store) CommentsOpen() bool { return s.commentsOpen }

// SoundEffects returns a copy of the live click-overlay effects.
func (s *Store) SoundEffects() []models.SoundEffect {
	return append([]models.SoundEffect(nil), s.effects...)
}

// =========================================================================
// Navigation
// =========================================================================

// SetView replaces the active view unconditionally. Overlay state is left
// untouched; views and overlays are independent.
func (s *Store) SetView(v models.View) {
	if !v.Valid() {
		return
	}
	s.view = v
	s.logger.Debug("view changed", slog.String("view", string(v)))
}

// =========================================================================
// Auth flow
// =========================================================================

// OpenUserLogin opens the login modal in user mode.
func (s *Store) OpenUserLogin() {
	s.authMode = models.AuthModeUser
	s.loginOpen = true
}

// OpenAdminLogin opens the login modal in admin mode, or goes straight to the
// drawer when the admin identity is already active.
func (s *Store) OpenAdminLogin() {
	if s.adminLoggedIn {
		s.adminPanelOpen = true
		return
	}
	s.authMode = models.AuthModeAdmin
	s.loginOpen = true
}

// CloseLogin dismisses the login modal without authenticating.
func (s *Store) CloseLogin() { s.loginOpen = false }

// Authenticate runs the submitted credentials through the auth stub.
//
// Admin mode: success sets the admin flag and auto-opens the drawer. User
// mode: success installs the new profile as the current user; signup
// additionally requires an email. Any success closes the modal. Failure
// returns the denial error and changes no state.
func (s *Store) Authenticate(mode models.AuthMode, creds auth.Credentials, signup bool) error {
	if mode == models.AuthModeAdmin {
		if err := auth.Admin(creds); err != nil {
			s.logger.Debug("admin auth rejected", slog.String("username", creds.Username))
			return err
		}
		s.adminLoggedIn = true
		s.adminPanelOpen = true
		s.loginOpen = false
		s.logger.Info("admin logged in")
		return nil
	}

	var (
		profile *models.UserProfile
		err     error
	)
	if signup {
		profile, err = auth.SignUp(creds, s.rand)
	} else {
		profile, err = auth.Login(creds, s.rand)
	}
	if err != nil {
		return err
	}
	s.currentUser = profile
	s.loginOpen = false
	s.logger.Info("user logged in", slog.String("username", profile.Username))
	return nil
}

// Logout clears the admin identity and closes the drawer. Any unsaved admin
// draft is the editor's problem, not the store's; it is simply dropped by the
// rendering layer.
func (s *Store) Logout() {
	s.adminLoggedIn = false
	s.adminPanelOpen = false
	s.logger.Info("admin logged out")
}

// =========================================================================
// Overlays
// =========================================================================

// SelectPost opens the detail modal on the post with the given ID. Unknown
// IDs are ignored.
func (s *Store) SelectPost(id string) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			s.selectedPost = &p
			return
		}
	}
}

// ClearSelectedPost closes the detail modal.
func (s *Store) ClearSelectedPost() { s.selectedPost = nil }

// OpenComments shows the comments drawer. Opening it from inside the detail
// modal does not close the modal; both can be visible at once.
func (s *Store) OpenComments() { s.commentsOpen = true }

// CloseComments hides the comments drawer.
func (s *Store) CloseComments() { s.commentsOpen = false }

// OpenAdminPanel shows the admin drawer.
func (s *Store) OpenAdminPanel() { s.adminPanelOpen = true }

// CloseAdminPanel hides the admin drawer.
func (s *Store) CloseAdminPanel() { s.adminPanelOpen = false }

// =========================================================================
// Comments
// =========================================================================

// AddComment prepends one comment to the shared stream and reports whether
// anything was added. Whitespace-only text is a no-op. The comment carries
// the current user's identity, or the fixed guest identity when nobody is
// logged in.
func (s *Store) AddComment(text string) (models.Comment, bool) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, false
	}
	c := models.Comment{
		ID:          s.clock.Now().UnixMilli(),
		User:        auth.GuestName,
		Text:        text,
		AvatarColor: auth.GuestAvatarColor,
	}
	if s.currentUser != nil {
		c.User = s.currentUser.Username
		c.AvatarColor = s.currentUser.AvatarColor
	}
	s.comments = append([]models.Comment{c}, s.comments...)
	s.logger.Debug("comment added", slog.Int64("id", c.ID), slog.String("user", c.User))
	return c, true
}

// =========================================================================
// Admin: content and settings
// =========================================================================

// ReplacePosts swaps the shared post collection for the given one, verbatim.
// This is the admin draft's save target; there is no merge or diffing.
func (s *Store) ReplacePosts(posts []models.Post) {
	s.posts = models.ClonePosts(posts)
	s.logger.Info("posts replaced", slog.Int("count", len(s.posts)))
}

// SetSiteTitle updates the site title immediately.
func (s *Store) SetSiteTitle(title string) {
	s.config.SiteTitle = title
}

// SetSoundEffects toggles the click overlay immediately.
func (s *Store) SetSoundEffects(enabled bool) {
	s.config.EnableSoundEffects = enabled
}

// SetAnimations toggles ambient animations immediately.
func (s *Store) SetAnimations(enabled bool) {
	s.config.EnableAnimations = enabled
}

// SetGlitch toggles the glitch-text effect immediately.
func (s *Store) SetGlitch(enabled bool) {
	s.config.EnableGlitch = enabled
}

// =========================================================================
// Sound effects
// =========================================================================

// TriggerSoundEffect records a click overlay at the given position and
// returns it. When sound effects are disabled nothing is scheduled and the
// second return is false. The caller is responsible for expiring the effect
// after its display lifetime.
func (s *Store) TriggerSoundEffect(x, y int) (models.SoundEffect, bool) {
	if !s.config.EnableSoundEffects {
		return models.SoundEffect{}, false
	}
	e := models.SoundEffect{
		ID:       s.clock.Now().UnixMilli(),
		X:        x,
		Y:        y,
		Text:     effectWords[s.rand.Intn(len(effectWords))],
		Rotation: s.rand.Intn(40) - 20,
	}
	s.effects = append(s.effects, e)
	return e, true
}

// ExpireSoundEffect removes the effect with the given ID, if still present.
func (s *Store) ExpireSoundEffect(id int64) {
	for i := range s.effects {
		if s.effects[i].ID == id {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			return
		}
	}
}
