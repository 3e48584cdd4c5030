package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rizalfh/movie-chat-api/internal/config"
	"github.com/rizalfh/movie-chat-api/internal/repository"
	"github.com/rizalfh/movie-chat-api/internal/utils"
)

// AuthHandler bundles dependencies for the register/login/logout endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type logoutReq struct {
	Username string `json:"username"`
}

// Register hashes the password and inserts the user. Username uniqueness
// and non-emptiness are the table's job; any constraint violation flows
// back to the client with the driver's own message.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "Failed", Message: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{
			Status:  "Failed",
			Message: fmt.Sprintf("Gagal Daftar: %v", err),
		})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Berhasil Daftar"})
}

// Login verifies credentials and sets the logged_in flag. Unknown user and
// wrong password both answer 401, with distinct messages. The read and the
// flag write are two statements with no transaction around them; the flag
// is a presence marker, not a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "Failed", Message: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, statusResponse{Status: "Failed", Message: "User tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, statusResponse{Status: "Failed", Message: "Password salah"})
	}

	if err := h.Users.SetLoggedIn(ctx, u.ID, true); err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Berhasil Login"})
}

// Logout clears the logged_in flag for the claimed username. Nothing
// verifies the caller owns that session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.ClearLoggedInByUsername(ctx, req.Username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "User tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Sayonara"})
}
