package repository

import (
	"context"
	"database/sql"

	"github.com/rizalfh/movie-chat-api/internal/model"
	"github.com/rizalfh/movie-chat-api/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user row with logged_in unset.
// Uniqueness of the username is left to the table constraint; a violation
// comes back as the driver's error, untouched.
func (r *UserRepo) Create(ctx context.Context, username, password string, cost int) (int64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password, logged_in) VALUES (?, ?, 0)",
		username, hash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername fetches a user by username. Returns sql.ErrNoRows on a miss.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password, logged_in FROM users WHERE username = ? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Password, &u.LoggedIn)
	return u, err
}

// SetLoggedIn flips the logged_in flag for a user id.
func (r *UserRepo) SetLoggedIn(ctx context.Context, id int64, loggedIn bool) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET logged_in = ? WHERE id = ?", loggedIn, id)
	return err
}

// ClearLoggedInByUsername clears the logged_in flag for the named user.
// The username alone selects the row; there is no check that the caller
// owns the session. Returns ErrUserNotFound when no row matched.
func (r *UserRepo) ClearLoggedInByUsername(ctx context.Context, username string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET logged_in = 0 WHERE username = ?", username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
