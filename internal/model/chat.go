package model

import "time"

// ChatMessage is one row of the `chats` table joined with the poster's
// username, as returned by /chat/:movie_id.
type ChatMessage struct {
	ChatID    int64     `json:"chat_id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Chat      string    `json:"chat"`
	CreatedAt time.Time `json:"created_at"`
}
