// Package editor implements the admin panel's local draft of the post
// collection.
//
// Opening the panel snapshots the shared posts into a Draft; every edit
// mutates only the draft, and nothing reaches the shared collection until the
// caller saves the draft back verbatim. Closing without saving silently
// discards all edits.
package editor

import "github.com/Joule-J/joules-comic-blog--1/internal/models"

// Draft is an unsaved working copy of the post collection.
type Draft struct {
	posts []models.Post
}

// New snapshots the given posts into a fresh draft.
func New(posts []models.Post) *Draft {
	return &Draft{posts: models.ClonePosts(posts)}
}

// Posts returns a copy of the draft's current state, suitable for a verbatim
// whole-collection save.
func (d *Draft) Posts() []models.Post {
	return models.ClonePosts(d.posts)
}

// Len returns the number of posts in the draft.
func (d *Draft) Len() int {
	return len(d.posts)
}

// Post returns the draft post at index i.
func (d *Draft) Post(i int) models.Post {
	return d.posts[i]
}

// set replaces a single field of the post with the given ID. Unknown IDs are
// ignored, matching the form's lookup-by-id behavior.
func (d *Draft) set(id string, mutate func(*models.Post)) {
	for i := range d.posts {
		if d.posts[i].ID == id {
			p := d.posts[i]
			mutate(&p)
			d.posts[i] = p
			return
		}
	}
}

// SetTitle replaces the title of the post with the given ID. Free text; no
// format or length validation.
func (d *Draft) SetTitle(id, title string) {
	d.set(id, func(p *models.Post) { p.Title = title })
}

// SetDate replaces the display date. The date is never parsed.
func (d *Draft) SetDate(id, date string) {
	d.set(id, func(p *models.Post) { p.Date = date })
}

// SetExcerpt replaces the card preview text.
func (d *Draft) SetExcerpt(id, excerpt string) {
	d.set(id, func(p *models.Post) { p.Excerpt = excerpt })
}

// SetContent replaces the full body text.
func (d *Draft) SetContent(id, content string) {
	d.set(id, func(p *models.Post) { p.Content = content })
}

// SetImage replaces the image URL. Accepted as-is, like the other free-text
// fields.
func (d *Draft) SetImage(id, image string) {
	d.set(id, func(p *models.Post) { p.Image = image })
}

// SetCategory replaces the category. Values outside the enumerated set are
// ignored; the field is only ever edited through a constrained control.
func (d *Draft) SetCategory(id string, c models.Category) {
	if !c.Valid() {
		return
	}
	d.set(id, func(p *models.Post) { p.Category = c })
}

// SetSize replaces the panel size, subject to the same constraint as
// SetCategory.
func (d *Draft) SetSize(id string, s models.Size) {
	if !s.Valid() {
		return
	}
	d.set(id, func(p *models.Post) { p.Size = s })
}

// SetColor replaces the accent color, subject to the same constraint as
// SetCategory.
func (d *Draft) SetColor(id string, c models.Color) {
	if !c.Valid() {
		return
	}
	d.set(id, func(p *models.Post) { p.Color = c })
}

// SetEffect replaces the visual effect, subject to the same constraint as
// SetCategory.
func (d *Draft) SetEffect(id string, e models.Effect) {
	if !e.Valid() {
		return
	}
	d.set(id, func(p *models.Post) { p.Effect = e })
}
