// Package auth implements the simulated authentication flow.
//
// There is no server round-trip, no hashing and no session token: the admin
// check compares against literal placeholder credentials, and user
// login/signup accepts any non-empty fields. This mirrors the product's mock
// auth and is explicitly not a security boundary.
package auth

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Joule-J/joules-comic-blog--1/internal/apperr"
	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

// Placeholder admin credential. Any real deployment would replace this with
// an actual credential mechanism; the mock flow keeps it literal on purpose.
const (
	adminUsername = "admin"
	adminPassword = "password"
)

// Guest identity used for comments when nobody is logged in.
const (
	GuestName        = "Guest_User"
	GuestAvatarColor = "gray"
)

// avatarPalette is the fixed set of colors a new profile can be assigned.
var avatarPalette = []string{"red", "blue", "green", "yellow", "purple"}

// Palette returns a copy of the avatar color palette.
func Palette() []string {
	out := make([]string, len(avatarPalette))
	copy(out, avatarPalette)
	return out
}

// Rand supplies the randomness used to pick an avatar color. Tests substitute
// a deterministic implementation.
type Rand interface {
	Intn(n int) int
}

// Credentials is the raw login form input.
type Credentials struct {
	Username string
	Password string
	Email    string
}

func (c Credentials) validate(requireEmail bool) error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrMissingCredentials, err)
	}
	if requireEmail {
		if err := validation.Validate(c.Email, validation.Required); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrEmailRequired, err)
		}
	}
	return nil
}

// Admin checks the credentials against the literal admin identity. On failure
// it returns apperr.ErrAccessDenied and nothing else changes.
func Admin(c Credentials) error {
	if c.Username != adminUsername || c.Password != adminPassword {
		return apperr.ErrAccessDenied
	}
	return nil
}

// Login simulates a user login. Both username and password must be non-empty;
// on success it returns a profile with an avatar color drawn uniformly from
// the fixed palette.
func Login(c Credentials, rnd Rand) (*models.UserProfile, error) {
	if err := c.validate(false); err != nil {
		return nil, err
	}
	return newProfile(c, rnd), nil
}

// SignUp simulates a user registration. It behaves like Login but also
// requires a non-empty email.
func SignUp(c Credentials, rnd Rand) (*models.UserProfile, error) {
	if err := c.validate(true); err != nil {
		return nil, err
	}
	return newProfile(c, rnd), nil
}

func newProfile(c Credentials, rnd Rand) *models.UserProfile {
	return &models.UserProfile{
		Username:    c.Username,
		Email:       c.Email,
		AvatarColor: avatarPalette[rnd.Intn(len(avatarPalette))],
	}
}
