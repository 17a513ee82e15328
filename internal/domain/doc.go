// Package domain contains the core business entities of the photo-card
// service (users and cards), their identifiers, and the typed failure
// taxonomy shared by every layer. It has no knowledge of HTTP or storage.
package domain
