package api

import (
	"time"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// SignupRequest defines the payload for POST /signup.
type SignupRequest struct {
	Email    string `json:"email"            validate:"required,email"`
	Password string `json:"password"         validate:"required"`
	Name     string `json:"name,omitempty"   validate:"omitempty,min=2,max=30"`
	About    string `json:"about,omitempty"  validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,link"`
}

// SigninRequest defines the payload for POST /signin.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest defines the payload for PATCH /users/me.
type ProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// AvatarRequest defines the payload for PATCH /users/me/avatar.
type AvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,link"`
}

// CardRequest defines the payload for POST /cards.
type CardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,link"`
}

// TokenResponse is returned by a successful sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user. It has no credential fields.
type UserResponse struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

// CardResponse is the public view of a card.
type CardResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

func cardToResponse(c *domain.Card) CardResponse {
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:        c.ID,
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.Owner,
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}

func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToResponse(c))
	}
	return out
}
