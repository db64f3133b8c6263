package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

type AuthHandler struct {
	store *storage.Storage
	jwt   *auth.JWTManager
}

func NewAuthHandler(store *storage.Storage, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{store: store, jwt: jwtManager}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz istek")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	switch {
	case req.FullName == "":
		return echo.NewHTTPError(http.StatusBadRequest, "Ad soyad gerekli")
	case utf8.RuneCountInString(req.FullName) < 2:
		return echo.NewHTTPError(http.StatusBadRequest, "Ad soyad en az 2 karakter olmalı")
	case req.Email == "":
		return echo.NewHTTPError(http.StatusBadRequest, "E-posta adresi gerekli")
	case !emailPattern.MatchString(req.Email):
		return echo.NewHTTPError(http.StatusBadRequest, "Geçerli bir e-posta adresi girin")
	case req.Password == "":
		return echo.NewHTTPError(http.StatusBadRequest, "Şifre gerekli")
	case utf8.RuneCountInString(req.Password) < 6:
		return echo.NewHTTPError(http.StatusBadRequest, "Şifre en az 6 karakter olmalı")
	}

	ctx := c.Request().Context()
	_, err := h.store.Queries.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Bu email adresi zaten kayıtlı")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to look up user", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Kullanıcı kaydı yapılamadı")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Kullanıcı kaydı yapılamadı")
	}

	id := ulid.Make().String()
	err = h.store.Queries.CreateUser(ctx, db.CreateUserParams{
		ID:             id,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashed,
	})
	if err != nil {
		slog.Error("failed to create user", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Kullanıcı kaydı yapılamadı")
	}

	slog.Info("user registered", "user_id", id, "email", req.Email)
	return c.JSON(http.StatusOK, types.User{ID: id, Email: req.Email, FullName: req.FullName, IsActive: true})
}

// Token is the OAuth2 password grant: form fields username and password.
func (h *AuthHandler) Token(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("username")))
	password := c.FormValue("password")

	user, err := h.store.Queries.GetUserByEmail(c.Request().Context(), email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to look up user", "error", err, "email", email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Giriş yapılamadı")
	}
	if err != nil || !auth.CheckPassword(user.HashedPassword, password) {
		c.Response().Header().Set("WWW-Authenticate", "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Giriş yapılamadı")
	}

	return c.JSON(http.StatusOK, types.Token{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}
	return c.JSON(http.StatusOK, types.User{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		IsActive: user.IsActive,
	})
}

func (h *AuthHandler) ConnectAmazon(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req types.AmazonConnection
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz istek")
	}
	if req.ClientID == "" || req.ClientSecret == "" || req.RefreshToken == "" || req.SellerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id, client_secret, refresh_token ve seller_id gerekli")
	}

	err = h.store.Queries.UpsertAmazonCredentials(c.Request().Context(), db.UpsertAmazonCredentialsParams{
		UserID:       userID,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		RefreshToken: req.RefreshToken,
		SellerID:     req.SellerID,
	})
	if err != nil {
		slog.Error("failed to store amazon credentials", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Amazon hesabı bağlanamadı")
	}

	return c.JSON(http.StatusOK, types.Message{Message: "Amazon hesabı başarıyla bağlandı"})
}

func (h *AuthHandler) ConnectTwitter(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req types.TwitterConnection
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz istek")
	}
	if req.AccessToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "access_token gerekli")
	}

	err = h.store.Queries.UpsertTwitterCredentials(c.Request().Context(), db.UpsertTwitterCredentialsParams{
		UserID:            userID,
		ConsumerKey:       req.ConsumerKey,
		ConsumerSecret:    req.ConsumerSecret,
		AccessToken:       req.AccessToken,
		AccessTokenSecret: req.AccessTokenSecret,
	})
	if err != nil {
		slog.Error("failed to store twitter credentials", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Twitter hesabı bağlanamadı")
	}

	return c.JSON(http.StatusOK, types.Message{Message: "Twitter hesabı başarıyla bağlandı"})
}

func (h *AuthHandler) Status(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}
	ctx := c.Request().Context()

	connected := func(err error) (bool, error) {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return err == nil, err
	}

	_, err := h.store.Queries.GetAmazonCredentials(ctx, user.ID)
	amazon, err := connected(err)
	if err != nil {
		slog.Error("failed to load amazon credentials", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Bağlantı durumu alınamadı")
	}
	_, err = h.store.Queries.GetTwitterCredentials(ctx, user.ID)
	twitter, err := connected(err)
	if err != nil {
		slog.Error("failed to load twitter credentials", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Bağlantı durumu alınamadı")
	}

	return c.JSON(http.StatusOK, types.ConnectionStatus{
		AmazonConnected:  amazon,
		TwitterConnected: twitter,
		UserID:           user.ID,
		Email:            user.Email,
	})
}
