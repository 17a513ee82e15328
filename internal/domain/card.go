package domain

import (
	"errors"
	"time"
)

var (
	ErrCardNameEmpty  = errors.New("card name cannot be empty")
	ErrCardLinkEmpty  = errors.New("card link cannot be empty")
	ErrCardOwnerEmpty = errors.New("card owner cannot be empty")
)

// Card is an image posted by a user. Likes holds the IDs of users who
// liked it, in the order the likes were added.
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCard creates a card owned by ownerID with no likes.
func NewCard(name, link, ownerID string) (*Card, error) {
	card := &Card{
		ID:        NewID(),
		Name:      name,
		Link:      link,
		Owner:     ownerID,
		Likes:     []string{},
		CreatedAt: time.Now().UTC(),
	}

	switch {
	case card.Name == "":
		return nil, ErrCardNameEmpty
	case card.Link == "":
		return nil, ErrCardLinkEmpty
	case card.Owner == "":
		return nil, ErrCardOwnerEmpty
	}
	return card, nil
}

// IsOwnedBy reports whether userID owns the card.
func (c *Card) IsOwnedBy(userID string) bool {
	return c.Owner == userID
}

// IsLikedBy reports whether userID has liked the card.
func (c *Card) IsLikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
