package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
	"storefront-api/internal/service"
)

type createUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Photo       string `json:"photo"`
}

type updateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Photo       string `json:"photo"`
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list users failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(c.Request.Context(), domain.User{
		Username:    req.Username,
		FullName:    req.FullName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Photo:       req.Photo,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			fail(c, http.StatusBadRequest, "username already taken")
			return
		}
		h.logger.WithError(err).Error("create user failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.users.Update(c.Request.Context(), domain.User{
		ID:          id,
		Username:    req.Username,
		FullName:    req.FullName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Photo:       req.Photo,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "user not found")
			return
		}
		h.logger.WithError(err).Error("update user failed")
		fail(c, http.StatusBadRequest, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user updated"})
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "user not found")
			return
		}
		h.logger.WithError(err).Error("delete user failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user deleted"})
}
