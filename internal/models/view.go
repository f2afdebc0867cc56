package models

// View is the active top-level content panel. Views are terminal states: any
// view is reachable from any other and switching never touches overlay state.
type View string

// Views.
const (
	ViewHome   View = "HOME"
	ViewBlogs  View = "BLOGS"
	ViewVideos View = "VIDEOS"
	ViewAbout  View = "ABOUT"
)

// Views returns all views in navigation order.
func Views() []View {
	return []View{ViewHome, ViewBlogs, ViewVideos, ViewAbout}
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewBlogs, ViewVideos, ViewAbout:
		return true
	}
	return false
}
