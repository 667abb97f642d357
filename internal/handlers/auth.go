package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/monitoring"
	"blogapi/internal/repositories"
	"blogapi/internal/utils"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	Users  repositories.UserRepository
	Tokens *utils.TokenManager
}

func NewAuthHandler(users repositories.UserRepository, tokens *utils.TokenManager) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user. No session is issued; the client logs in
// separately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	exists, err := h.Users.Exists(req.Username)
	if err != nil {
		logrus.WithError(err).Error("Error checking username")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).Error("Error hashing password")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := &models.User{Username: req.Username, PasswordHash: passwordHash}
	if err := h.Users.Create(user); err != nil {
		// A concurrent registration can slip past the pre-check and land
		// on the unique constraint instead.
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		logrus.WithError(err).Error("Error inserting user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	monitoring.RegisterSuccess.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login verifies credentials and delivers a session token via an HTTP-only
// cookie. Unknown user and wrong password are indistinguishable to the
// client.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		monitoring.LoginFailure.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	user, err := h.Users.FindByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logrus.WithError(err).Error("Error querying user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
			return
		}
		monitoring.LoginFailure.WithLabelValues("unknown_user").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		monitoring.LoginFailure.WithLabelValues("wrong_password").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := h.Tokens.Generate(user.Username)
	if err != nil {
		logrus.WithError(err).Error("Error generating token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(utils.TokenTTL.Seconds()), "/", "", false, true)
	monitoring.LoginSuccess.Inc()
	c.JSON(http.StatusOK, gin.H{"msg": "login successful"})
}

// Logout clears the session cookie. The server keeps no revocation state,
// so an already issued token stays valid until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": "logout successful"})
}
