package models

// User is a registered account. Accounts are append-only: they are never
// updated in place or deleted. The password is stored and compared as-is,
// case-sensitively; there is deliberately no hashing layer.
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
}
