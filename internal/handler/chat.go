package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rizalfh/movie-chat-api/internal/repository"
)

// ChatHandler serves the per-movie chat log. Chat is plain
// request/response: post a message, list a movie's messages.
type ChatHandler struct {
	Chats *repository.ChatRepo
}

func NewChatHandler(ch *repository.ChatRepo) *ChatHandler {
	return &ChatHandler{Chats: ch}
}

type postChatReq struct {
	MovieID int64  `json:"movie_id"`
	UserID  int64  `json:"user_id"`
	Chat    string `json:"chat"`
}

// PostChat stores one message. Only the text is validated; movie_id and
// user_id pass through to the store, which does not enforce its foreign
// keys unless configured to.
func (h *ChatHandler) PostChat(c echo.Context) error {
	var req postChatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "invalid body"})
	}
	if strings.TrimSpace(req.Chat) == "" {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "Pesan chat tidak boleh kosong"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Chats.Insert(ctx, req.MovieID, req.UserID, req.Chat); err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Status:  "error",
			Message: fmt.Sprintf("Gagal mengirim pesan: %v", err),
		})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Pesan terkirim"})
}

// ListChats returns a movie's full chat history, oldest first. A
// non-integer movie_id falls back to 0, yielding an empty array rather
// than an error.
func (h *ChatHandler) ListChats(c echo.Context) error {
	movieID, _ := strconv.ParseInt(c.Param("movie_id"), 10, 64)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	msgs, err := h.Chats.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, msgs)
}
