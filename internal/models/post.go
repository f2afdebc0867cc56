// Package models defines the domain types for the comic blog.
package models

// Category classifies a post in the feed.
type Category string

// Post categories.
const (
	CategoryVlog     Category = "VLOG"
	CategoryPhoto    Category = "PHOTO"
	CategoryThoughts Category = "THOUGHTS"
	CategoryMusic    Category = "MUSIC"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryVlog, CategoryPhoto, CategoryThoughts, CategoryMusic}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryVlog, CategoryPhoto, CategoryThoughts, CategoryMusic:
		return true
	}
	return false
}

// Size controls a post's footprint in the feed grid.
type Size string

// Panel sizes.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeTall   Size = "tall"
)

// Sizes returns all panel sizes in display order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeTall}
}

// Valid reports whether s is one of the known sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeTall:
		return true
	}
	return false
}

// Color is a post's accent color.
type Color string

// Accent colors.
const (
	ColorCyan    Color = "cyan"
	ColorMagenta Color = "magenta"
	ColorYellow  Color = "yellow"
)

// Colors returns all accent colors in display order.
func Colors() []Color {
	return []Color{ColorCyan, ColorMagenta, ColorYellow}
}

// Valid reports whether c is one of the known accent colors.
func (c Color) Valid() bool {
	switch c {
	case ColorCyan, ColorMagenta, ColorYellow:
		return true
	}
	return false
}

// Effect is an optional visual effect applied to a post panel.
type Effect string

// Visual effects.
const (
	EffectNone   Effect = "none"
	EffectPulse  Effect = "pulse"
	EffectShake  Effect = "shake"
	EffectGlitch Effect = "glitch"
)

// Effects returns all visual effects in display order.
func Effects() []Effect {
	return []Effect{EffectNone, EffectPulse, EffectShake, EffectGlitch}
}

// Valid reports whether e is one of the known effects.
func (e Effect) Valid() bool {
	switch e {
	case EffectNone, EffectPulse, EffectShake, EffectGlitch:
		return true
	}
	return false
}

// Post is a single blog entry in the feed.
//
// Title, Date, Excerpt, Content and Image are free text; the remaining fields
// are constrained to their enumerated values. Date is a display string and is
// never parsed.
type Post struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Content  string   `json:"content,omitempty" yaml:"content"`
	Image    string   `json:"image" yaml:"image"`
	Category Category `json:"category" yaml:"category"`
	Date     string   `json:"date" yaml:"date"`
	Size     Size     `json:"size" yaml:"size"`
	Color    Color    `json:"color" yaml:"color"`
	Effect   Effect   `json:"effect,omitempty" yaml:"effect"`
}

// ClonePosts returns a deep copy of a post collection. Posts contain no
// reference fields, so a slice copy is sufficient.
func ClonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}
