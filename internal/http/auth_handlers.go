package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/service"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body gets the same response as bad credentials so the
		// login endpoint has exactly one failure shape.
		fail(c, http.StatusUnauthorized, "INVALID USERNAME / PASSWORD")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "INVALID USERNAME / PASSWORD")
			return
		}
		h.logger.WithError(err).Error("login failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user, "token": token})
}

// renewSession reissues the caller's token with a fresh, longer expiry. The
// guard has already validated the token; only the expiry changes.
func (h *Handler) renewSession(c *gin.Context) {
	token, ok := sessionToken(c)
	if !ok {
		rejectUnauthorized(c)
		return
	}

	user, renewed, err := h.auth.Renew(token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "INVALID CREDENTIALS")
			return
		}
		h.logger.WithError(err).Error("session renewal failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user, "token": renewed})
}

func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), req.Username, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Your password has been updated."})
	case errors.Is(err, service.ErrUserNotFound):
		fail(c, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrPasswordMismatch):
		fail(c, http.StatusBadRequest, "old password does not match")
	default:
		h.logger.WithError(err).Error("password change failed")
		fail(c, http.StatusBadRequest, "request failed")
	}
}
