package models

// User represents an operator account. Passwords are stored as a salted
// scrypt hash in "hex(hash).hex(salt)" form, never in plain text.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username" binding:"required"`
	Password string `json:"-" db:"password"`
}
