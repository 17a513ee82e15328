package service

import (
	"fmt"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// User-facing messages produced by the services.
const (
	MsgCardDeleted       = "Card deleted"
	MsgCardNotOwned      = "Cannot delete another user's card"
	MsgCardInvalid       = "Card data is invalid"
	msgUserNotFoundFmt   = "User with id %s not found"
	msgCardNotFoundFmt   = "No card with id %s"
	msgActingUserMissing = "User not found"
)

func userNotFound(id string) *domain.Error {
	return domain.NewNotFoundError(fmt.Sprintf(msgUserNotFoundFmt, id))
}

func cardNotFound(id string) *domain.Error {
	return domain.NewNotFoundError(fmt.Sprintf(msgCardNotFoundFmt, id))
}
