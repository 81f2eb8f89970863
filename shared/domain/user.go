package domain

// User is the authenticated caller as decoded from the access token.
// Accounts themselves are managed by the authentication service.
type User struct {
	Id       UserId
	Username Username
}
