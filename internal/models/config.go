package models

// AdminConfig holds the site-wide toggles editable from the admin settings
// tab. Changes apply immediately; there is no draft step for settings.
type AdminConfig struct {
	EnableSoundEffects bool   `json:"enable_sound_effects" yaml:"enable_sound_effects"`
	EnableAnimations   bool   `json:"enable_animations" yaml:"enable_animations"`
	EnableGlitch       bool   `json:"enable_glitch" yaml:"enable_glitch"`
	SiteTitle          string `json:"site_title" yaml:"site_title"`
}
