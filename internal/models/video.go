package models

// Video is an item on the videos page. The list is fixed seed data; there is
// no playback, only presentation.
type Video struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
	Views     string `json:"views" yaml:"views"`
}
