// Package seed supplies the fixed records the application starts with: six
// posts, three comments, the video list, and the default site config.
//
// The defaults are embedded in the binary; a config-supplied file with the
// same schema can replace them.
package seed

import (
	_ "embed"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	pkgconfig "github.com/Joule-J/joules-comic-blog--1/pkg/config"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

//go:embed seed.yaml
var embedded []byte

// Data is the initial application state.
type Data struct {
	Config   models.AdminConfig `yaml:"config"`
	Posts    []models.Post      `yaml:"posts"`
	Comments []models.Comment   `yaml:"comments"`
	Videos   []models.Video     `yaml:"videos"`
}

// Validate checks the seed invariants: unique post IDs, enumerated fields
// within their allowed sets, and required display fields present. An empty
// effect is normalised to "none" first.
func (d *Data) Validate() error {
	if err := validation.Validate(d.Config.SiteTitle, validation.Required); err != nil {
		return fmt.Errorf("config: site_title: %w", err)
	}

	seen := make(map[string]bool, len(d.Posts))
	for i := range d.Posts {
		p := &d.Posts[i]
		if p.Effect == "" {
			p.Effect = models.EffectNone
		}
		if err := validatePost(p); err != nil {
			return fmt.Errorf("post %d: %w", i, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("post %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}

	for i, c := range d.Comments {
		if err := validation.ValidateStruct(&c,
			validation.Field(&c.User, validation.Required),
			validation.Field(&c.Text, validation.Required),
		); err != nil {
			return fmt.Errorf("comment %d: %w", i, err)
		}
	}

	for i, v := range d.Videos {
		if err := validation.ValidateStruct(&v,
			validation.Field(&v.ID, validation.Required),
			validation.Field(&v.Title, validation.Required),
		); err != nil {
			return fmt.Errorf("video %d: %w", i, err)
		}
	}

	return nil
}

func validatePost(p *models.Post) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Category, validation.Required,
			validation.In(models.CategoryVlog, models.CategoryPhoto, models.CategoryThoughts, models.CategoryMusic)),
		validation.Field(&p.Size, validation.Required,
			validation.In(models.SizeSmall, models.SizeMedium, models.SizeLarge, models.SizeTall)),
		validation.Field(&p.Color, validation.Required,
			validation.In(models.ColorCyan, models.ColorMagenta, models.ColorYellow)),
		validation.Field(&p.Effect,
			validation.In(models.EffectNone, models.EffectPulse, models.EffectShake, models.EffectGlitch)),
	)
}

// Default parses the embedded seed file.
func Default() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(embedded, &d); err != nil {
		return nil, fmt.Errorf("parse embedded seed: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("embedded seed: %w", err)
	}
	return &d, nil
}

// Load reads the seed file at path, or the embedded defaults when path is
// empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	var d Data
	if err := pkgconfig.Load(path, &d); err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return &d, nil
}
