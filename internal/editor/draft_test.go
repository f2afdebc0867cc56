package editor

import (
	"testing"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

func twoPosts() []models.Post {
	return []models.Post{
		{ID: "1", Title: "ONE", Excerpt: "first", Category: models.CategoryVlog,
			Size: models.SizeSmall, Color: models.ColorCyan, Effect: models.EffectNone},
		{ID: "2", Title: "TWO", Excerpt: "second", Category: models.CategoryPhoto,
			Size: models.SizeTall, Color: models.ColorMagenta, Effect: models.EffectNone},
	}
}

func TestDraft_SnapshotsOnNew(t *testing.T) {
	posts := twoPosts()
	d := New(posts)

	// Mutating the source slice must not reach the draft.
	posts[0].Title = "MUTATED"
	if got := d.Post(0).Title; got != "ONE" {
		t.Errorf("draft title = %q, want %q", got, "ONE")
	}
}

func TestDraft_SetFieldTouchesOnlyMatchingPost(t *testing.T) {
	d := New(twoPosts())
	d.SetTitle("2", "REVISED")

	if got := d.Post(0).Title; got != "ONE" {
		t.Errorf("post 1 title = %q, want unchanged %q", got, "ONE")
	}
	if got := d.Post(1).Title; got != "REVISED" {
		t.Errorf("post 2 title = %q, want %q", got, "REVISED")
	}
	if got := d.Post(1).Excerpt; got != "second" {
		t.Errorf("post 2 excerpt = %q, want the other fields untouched", got)
	}
}

func TestDraft_UnknownIDIsNoop(t *testing.T) {
	d := New(twoPosts())
	d.SetTitle("999", "GHOST")
	for i := 0; i < d.Len(); i++ {
		if d.Post(i).Title == "GHOST" {
			t.Fatal("unknown id must not modify any post")
		}
	}
}

func TestDraft_FreeTextFieldsAcceptAnything(t *testing.T) {
	d := New(twoPosts())
	d.SetDate("1", "not a date at all")
	d.SetImage("1", "also not a url")
	d.SetContent("1", "")

	p := d.Post(0)
	if p.Date != "not a date at all" || p.Image != "also not a url" || p.Content != "" {
		t.Errorf("free text fields must be accepted verbatim, got %+v", p)
	}
}

func TestDraft_EnumSettersRejectInvalidValues(t *testing.T) {
	d := New(twoPosts())
	d.SetCategory("1", models.Category("NOPE"))
	d.SetSize("1", models.Size("huge"))
	d.SetColor("1", models.Color("mauve"))
	d.SetEffect("1", models.Effect("explode"))

	p := d.Post(0)
	if p.Category != models.CategoryVlog || p.Size != models.SizeSmall ||
		p.Color != models.ColorCyan || p.Effect != models.EffectNone {
		t.Errorf("invalid enum values must be ignored, got %+v", p)
	}

	d.SetEffect("1", models.EffectGlitch)
	if d.Post(0).Effect != models.EffectGlitch {
		t.Error("valid enum value should be applied")
	}
}

func TestDraft_PostsReturnsIndependentCopy(t *testing.T) {
	d := New(twoPosts())
	out := d.Posts()
	out[0].Title = "MUTATED"
	if d.Post(0).Title != "ONE" {
		t.Error("mutating the returned slice must not change the draft")
	}
}
