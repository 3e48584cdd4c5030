package model

// User mirrors the `users` table. The json tags are omitted because the
// struct never leaves the repository and handler layers; responses carry
// their own DTOs.
//
// LoggedIn is a coarse presence flag, not a session: login sets it,
// logout clears it, and nothing ever verifies it.
type User struct {
	ID       int64  // users.id
	Username string // users.username (unique)
	Password string // users.password (bcrypt hash)
	LoggedIn bool   // users.logged_in
}
