// Package service contains the business logic behind the profile and card
// routes. Services sit between the HTTP handlers and the store interfaces:
// they translate store sentinels into classified domain failures and
// enforce rules that span entities, such as card ownership.
//
// Registration and sign-in live in the auth subpackage.
package service
