package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/lavadero-app/lavadero-backend/internal/middleware"
	"github.com/lavadero-app/lavadero-backend/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/oauth2"
)

const oauthStateCookie = "oauth_state"

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	oauthService portssvc.GoogleOAuthSvcFacade
	frontendURL  string
	isProduction bool
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		oauthService: services.GoogleOAuth,
		frontendURL:  cfg.FrontendBaseURL,
		isProduction: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate-limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
		auth.POST("/register", h.register)
		auth.GET("/google", h.googleLogin)
		auth.GET("/google/callback", h.googleCallback)
	}
}

// registerProfileRoutes sets up the authenticated identity routes.
func registerProfileRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, cfg *config.Config) {
	h := newAuthHandler(services, cfg)
	rg.GET("/auth/profile", h.profile)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a signed JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			respondMessage(c, http.StatusUnauthorized, "Correo o contraseña incorrectos")
			return
		}
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"token":   token,
		"usuario": dto.ToUserResponse(user),
	})
}

// register godoc
// @Summary Register new user
// @Description Creates a local identity with a bcrypt-hashed password.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /api/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondMessage(c, http.StatusConflict, "El correo ya está registrado")
			return
		}
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"usuario": dto.ToUserResponse(user)})
}

// googleLogin redirects the browser to Google's consent screen with a CSRF
// state cookie.
func (h *authHandler) googleLogin(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, state, 300, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// googleCallback completes the OAuth flow: verifies the state, exchanges the
// code, resolves the Google identity to a local user and hands the frontend
// a signed token in the URL fragment.
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stateCookie, err := c.Cookie(oauthStateCookie)
	if err != nil || stateCookie == "" || c.Query("state") != stateCookie {
		logger.Warn("OAuth state mismatch")
		respondMessage(c, http.StatusBadRequest, "Estado de OAuth inválido")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.isProduction, true)

	code := c.Query("code")
	if code == "" {
		respondMessage(c, http.StatusBadRequest, "Código de autorización ausente")
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", slog.String("error", err.Error()))
		respondMessage(c, http.StatusUnauthorized, "No se pudo validar la cuenta de Google")
		return
	}

	name, email, providerUserID, err := h.resolveGoogleIdentity(c, token)
	if err != nil {
		logger.Error("Failed to resolve google identity", slog.String("error", err.Error()))
		respondMessage(c, http.StatusUnauthorized, "No se pudo validar la cuenta de Google")
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), name, email, providerUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/#token="+accessToken)
}

// resolveGoogleIdentity prefers the ID token from the exchange response and
// falls back to the userinfo endpoint when none is present.
func (h *authHandler) resolveGoogleIdentity(c *gin.Context, token *oauth2.Token) (name, email, providerUserID string, err error) {
	if raw, ok := token.Extra("id_token").(string); ok && raw != "" {
		payload, vErr := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), raw)
		if vErr == nil {
			name, _ = payload.Claims["name"].(string)
			email, _ = payload.Claims["email"].(string)
			return name, email, payload.Subject, nil
		}
		err = vErr
	}

	info, uErr := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if uErr != nil {
		if err != nil {
			return "", "", "", errors.Join(err, uErr)
		}
		return "", "", "", uErr
	}
	return info.Name, info.Email, info.ID, nil
}

// profile godoc
// @Summary Current identity
// @Description Returns the authenticated user's profile.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]any
// @Security BearerAuth
// @Router /api/auth/profile [get]
func (h *authHandler) profile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "No autenticado")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"usuario": dto.ToUserResponse(user)})
}
