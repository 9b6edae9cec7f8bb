package api

import (
	"errors"
	"net/http"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile"`
}

// Register creates an account, runs the sign-in reconciliation, and
// returns a session token.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and a password of at least 8 characters are required"})
		return
	}

	user := &models.User{Email: req.Email, PasswordHash: req.Password}
	if err := h.store.CreateUser(user); err != nil {
		h.respondError(c, err, "Failed to create account")
		return
	}

	h.respondSession(c, http.StatusCreated, user)
}

// Login verifies credentials, runs the sign-in reconciliation, and
// returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.respondError(c, err, "Failed to sign in")
		return
	}
	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.respondSession(c, http.StatusOK, user)
}

func (h *Handler) respondSession(c *gin.Context, status int, user *models.User) {
	profile := h.reconciler.Reconcile(user)

	token, err := h.jwt.GenerateToken(user.ID, user.Email, profile.UserType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(status, sessionResponse{Token: token, User: user, Profile: profile})
}

// Logout revokes the caller's token for the rest of its lifetime.
func (h *Handler) Logout(c *gin.Context) {
	claims := currentClaims(c)
	if claims != nil {
		h.blacklist.Revoke(c.Request.Context(), bearerToken(c), claims.RemainingTTL())
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// Me returns the caller's account and profile. A missing profile is
// repaired by running the reconciliation again.
func (h *Handler) Me(c *gin.Context) {
	claims := currentClaims(c)

	user, err := h.store.GetUser(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to load account")
		return
	}

	profile, err := h.store.GetProfileByUser(user.ID)
	if errors.Is(err, store.ErrNotFound) {
		profile = h.reconciler.Reconcile(user)
	} else if err != nil {
		h.respondError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "profile": profile})
}

// UploadAvatar stores an avatar image and records its URL on the account.
func (h *Handler) UploadAvatar(c *gin.Context) {
	claims := currentClaims(c)

	header, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An avatar file is required"})
		return
	}

	object, err := h.files.Save(header)
	if err != nil {
		h.logger.WithError(err).Error("Failed to store avatar")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	user, err := h.store.UpdateUser(claims.UserID, map[string]interface{}{"avatar_url": object.URL})
	if err != nil {
		h.files.Remove(object.Key)
		h.respondError(c, err, "Failed to update avatar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": user.AvatarURL})
}
