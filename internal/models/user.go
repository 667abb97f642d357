package models

// User represents a registered account. PasswordHash is a bcrypt hash and
// never leaves the process in a response body.
type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}
