package controllers

import (
	"errors"
	"net/http"

	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/pkg/auth"
	"github.com/ovenfresh/cookieshop/pkg/bind"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/middleware"
	"github.com/ovenfresh/cookieshop/pkg/response"
)

// AuthController serves the admin login and token verification endpoints.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /api/admin/login.
//
// On success the refresh token is returned in the body AND set as a
// cookie. The cookie is intentionally not HttpOnly: the admin client
// reads it to keep a localStorage backup copy.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	if err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	if body.Phone == "" || body.Password == "" {
		response.Error(w, http.StatusBadRequest, "Phone and password are required")
		return
	}

	accessToken, refreshToken, err := c.service.Login(body.Phone, body.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	case errors.Is(err, services.ErrAdminNotFound):
		response.Error(w, http.StatusInternalServerError, "Admin not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(auth.RefreshTokenTTL.Seconds()),
		HttpOnly: false,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	logger.WithCtx(r.Context()).Info("admin login", "phone", body.Phone)

	response.OK(w, map[string]interface{}{
		"success":      true,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Verify handles POST /api/auth/verify: it re-validates a refresh token
// and mints a fresh access token. This is the only way a client with an
// expired access token regains a bearer credential without re-entering
// credentials.
func (c *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token interface{} `json:"token"`
	}

	if err := bind.JSON(r, &body); err != nil {
		verifyError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if body.Token == nil {
		verifyError(w, http.StatusBadRequest, "No token provided")
		return
	}

	token, ok := body.Token.(string)
	if !ok {
		verifyError(w, http.StatusBadRequest, "Token must be a string")
		return
	}

	claims := auth.VerifyToken(token)
	if claims == nil {
		verifyError(w, http.StatusUnauthorized, "Invalid token - could not verify")
		return
	}

	accessToken, err := auth.GenerateAccessToken(claims.UserID, claims.IsAdmin)
	if err != nil {
		logger.WithCtx(r.Context()).Error("mint access token", "error", err)
		verifyError(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.OK(w, map[string]interface{}{
		"valid":       true,
		"isAdmin":     claims.IsAdmin,
		"userId":      claims.UserID,
		"accessToken": accessToken,
	})
}

// verifyError writes the verify endpoint's failure shape, which carries an
// explicit valid:false alongside the error message.
func verifyError(w http.ResponseWriter, status int, message string) {
	response.JSON(w, status, map[string]interface{}{
		"valid": false,
		"error": message,
	})
}
