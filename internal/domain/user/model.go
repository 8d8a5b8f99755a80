// Package user owns the credential store: accounts, password hashes, and
// login.
package user

// User maps to the users table. The hash never serializes.
type User struct {
	UserID       int    `db:"user_id" json:"user_id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"user_role" json:"role"`
}

// Public is the externally visible account record.
type Public struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public returns the user without credential material.
func (u *User) Public() Public {
	return Public{UserID: u.UserID, Username: u.Username, Role: u.Role}
}
