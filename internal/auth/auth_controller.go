package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/questboard/config"
	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/responses"
	"github.com/DhavalSuthar-24/questboard/pkg/revocation"
	"github.com/DhavalSuthar-24/questboard/pkg/token"
	"github.com/DhavalSuthar-24/questboard/pkg/utils"
	"github.com/DhavalSuthar-24/questboard/pkg/validator"
)

const (
	msgBadCredentials = "No active account found with the given credentials"
	msgBadRefresh     = "Token is invalid or expired"
)

type AuthController struct {
	repo    AuthRepository
	revoked revocation.Store
	config  *config.Config
	log     *slog.Logger
}

func NewAuthController(repo AuthRepository, revoked revocation.Store, cfg *config.Config, log *slog.Logger) *AuthController {
	return &AuthController{repo: repo, revoked: revoked, config: cfg, log: log}
}

func (ac *AuthController) generateTokens(userID uint) (string, string, error) {
	accessToken, err := token.GenerateJWT(userID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes, ac.config.JWT.Issuer)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshToken, _, err := token.GenerateRefreshToken(userID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays, ac.config.JWT.Issuer)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}
	return accessToken, refreshToken, nil
}

// @Summary      Register a new user
// @Description  Create a new user with username, password and an optional email.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  SignupRequest  true  "User registration details"
// @Success      201   {object} MessageResponse
// @Failure      400   {object} SignupErrorResponse "Missing fields or username taken"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /signup/ [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msgs := validator.ParseError(err)
		for field, m := range msgs {
			c.AbortWithStatusJSON(http.StatusBadRequest, SignupErrorResponse{Error: field + ": " + strings.Join(m, " ")})
			return
		}
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, SignupErrorResponse{Error: "Username and password required"})
		return
	}
	if len(req.Username) > 150 {
		c.AbortWithStatusJSON(http.StatusBadRequest, SignupErrorResponse{Error: "Username must be at most 150 characters"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password, ac.config.App.BcryptCost)
	if err != nil {
		ac.log.ErrorContext(c.Request.Context(), "hash password failed", slog.String("op", "auth.signup"), slog.Any("error", err))
		responses.InternalServerError(c)
		return
	}

	newUser := &models.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
	}
	if err := ac.repo.CreateUser(c.Request.Context(), newUser); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			c.AbortWithStatusJSON(http.StatusBadRequest, SignupErrorResponse{Error: "Username already taken"})
			return
		}
		ac.log.ErrorContext(c.Request.Context(), "create user failed", slog.String("op", "auth.signup"), slog.Any("error", err))
		responses.InternalServerError(c)
		return
	}

	ac.log.InfoContext(c.Request.Context(), "user signed up", slog.String("op", "auth.signup"), slog.Uint64("user_id", uint64(newUser.ID)))
	c.JSON(http.StatusCreated, MessageResponse{Message: "User created successfully"})
}

// @Summary      Obtain a token pair
// @Description  Exchange username and password for an access and a refresh token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} TokenPairResponse
// @Failure      400   {object} map[string][]string "Validation error"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Router       /token/ [post]
func (ac *AuthController) ObtainToken(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	foundUser, err := ac.repo.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		ac.log.ErrorContext(c.Request.Context(), "user lookup failed", slog.String("op", "auth.token"), slog.Any("error", err))
		responses.InternalServerError(c)
		return
	}
	if foundUser == nil || !utils.CheckPassword(foundUser.Password, req.Password) {
		responses.Unauthorized(c, msgBadCredentials)
		return
	}

	accessToken, refreshToken, err := ac.generateTokens(foundUser.ID)
	if err != nil {
		ac.log.ErrorContext(c.Request.Context(), "token generation failed", slog.String("op", "auth.token"), slog.Any("error", err))
		responses.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, TokenPairResponse{Access: accessToken, Refresh: refreshToken})
}

// @Summary      Refresh Access Token
// @Description  Refreshes the access token using a valid refresh token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh Token Request"
// @Success      200 {object} AccessTokenResponse
// @Failure      400 {object} map[string][]string "Validation error"
// @Failure      401 {object} responses.ErrorResponse "Invalid, expired or blacklisted refresh token"
// @Router       /token/refresh/ [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	claims, ok := ac.validRefresh(c, "auth.refresh")
	if !ok {
		return
	}

	if _, err := ac.repo.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
		responses.Unauthorized(c, msgBadRefresh)
		return
	}

	accessToken, err := token.GenerateJWT(claims.UserID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes, ac.config.JWT.Issuer)
	if err != nil {
		ac.log.ErrorContext(c.Request.Context(), "token generation failed", slog.String("op", "auth.refresh"), slog.Any("error", err))
		responses.InternalServerError(c)
		return
	}
	c.JSON(http.StatusOK, AccessTokenResponse{Access: accessToken})
}

// @Summary      Blacklist a refresh token
// @Description  Revokes the refresh token so it can no longer be refreshed.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh Token Request"
// @Success      200 {object} map[string]string
// @Failure      401 {object} responses.ErrorResponse "Invalid, expired or already blacklisted refresh token"
// @Router       /token/blacklist/ [post]
func (ac *AuthController) BlacklistToken(c *gin.Context) {
	claims, ok := ac.validRefresh(c, "auth.blacklist")
	if !ok {
		return
	}

	if err := ac.revoked.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		ac.log.ErrorContext(c.Request.Context(), "revoke token failed", slog.String("op", "auth.blacklist"), slog.Any("error", err))
		responses.InternalServerError(c)
		return
	}
	ac.log.InfoContext(c.Request.Context(), "refresh token blacklisted", slog.String("op", "auth.blacklist"), slog.Uint64("user_id", uint64(claims.UserID)))
	c.JSON(http.StatusOK, gin.H{})
}

// validRefresh binds the request body and checks the refresh token is
// well-formed, unexpired and not blacklisted.
func (ac *AuthController) validRefresh(c *gin.Context, op string) (*token.Claims, bool) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return nil, false
	}

	claims, err := token.ValidateTyped(req.Refresh, ac.config.JWT.RefreshTokenSecret, token.TypeRefresh)
	if err != nil {
		responses.Unauthorized(c, msgBadRefresh)
		return nil, false
	}

	revoked, err := ac.revoked.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		ac.log.ErrorContext(c.Request.Context(), "revocation lookup failed", slog.String("op", op), slog.Any("error", err))
		responses.InternalServerError(c)
		return nil, false
	}
	if revoked {
		responses.Unauthorized(c, "Token is blacklisted")
		return nil, false
	}
	return claims, true
}
