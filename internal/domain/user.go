package domain

import (
	"errors"
	"strings"
)

// Profile defaults applied when a user signs up without them.
const (
	DefaultUserName   = "Jacques-Yves Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

var (
	ErrEmptyEmail        = errors.New("email cannot be empty")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
)

// User is a registered identity.
//
// PasswordHash is only populated on the credential verification path and
// is never serialized.
type User struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	About        string `json:"about"`
	Avatar       string `json:"avatar"`
}

// NewUser builds a user with a fresh ID from an already hashed password.
// Empty profile fields are filled with the defaults and the email is
// normalized.
func NewUser(email, passwordHash, name, about, avatar string) (*User, error) {
	user := &User{
		ID:           NewID(),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Name:         valueOrDefault(name, DefaultUserName),
		About:        valueOrDefault(about, DefaultUserAbout),
		Avatar:       valueOrDefault(avatar, DefaultUserAvatar),
	}

	if user.Email == "" {
		return nil, ErrEmptyEmail
	}
	if user.PasswordHash == "" {
		return nil, ErrEmptyPasswordHash
	}
	return user, nil
}

// WithoutCredentials returns a copy of the user with the password hash cleared.
func (u *User) WithoutCredentials() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// NormalizeEmail trims and lowercases an email so lookups and the unique
// constraint agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
