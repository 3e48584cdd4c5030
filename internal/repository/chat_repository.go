package repository

import (
	"context"
	"database/sql"

	"github.com/rizalfh/movie-chat-api/internal/model"
)

type ChatRepo struct{ DB *sql.DB }

func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{DB: db} }

// Insert stores one chat message. created_at comes from the table
// default. movie_id and user_id are taken as given; foreign keys are not
// validated here.
func (r *ChatRepo) Insert(ctx context.Context, movieID, userID int64, chat string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO chats (movie_id, user_id, chat) VALUES (?, ?, ?)",
		movieID, userID, chat)
	return err
}

// ListByMovie returns every chat message for a movie joined with the
// poster's username, oldest first.
func (r *ChatRepo) ListByMovie(ctx context.Context, movieID int64) ([]model.ChatMessage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.chat_id, c.movie_id, c.user_id, u.username, c.chat, c.created_at
		FROM chats c
		JOIN users u ON c.user_id = u.id
		WHERE c.movie_id = ?
		ORDER BY c.created_at ASC`, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ChatID, &m.MovieID, &m.UserID, &m.Username, &m.Chat, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
