package models

// Comment is a single entry in the shared comment stream.
//
// The stream is global: every post shares one comment list. IDs are derived
// from the wall clock at creation time and are unique enough for a single
// interactive session.
type Comment struct {
	ID          int64  `json:"id" yaml:"id"`
	User        string `json:"user" yaml:"user"`
	Text        string `json:"text" yaml:"text"`
	AvatarColor string `json:"avatar_color" yaml:"avatar_color"`
}
