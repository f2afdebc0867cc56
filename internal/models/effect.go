package models

// SoundEffect is a transient "BAM!"-style click overlay. It carries no
// logical state; the renderer removes it again after a fixed delay.
type SoundEffect struct {
	ID       int64  `json:"id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Text     string `json:"text"`
	Rotation int    `json:"rotation"`
}
