package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// GetAllUsers godoc
// @Summary List users
// @Description All registered users without password hashes (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.auth.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list users"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Users retrieved", "data": users})
}

// UpdateUserRole godoc
// @Summary Update user role
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UpdateRoleRequest true "New role"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (ctrl *UserController) UpdateUserRole(c *gin.Context) {
	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Role must be user or admin"})
		return
	}

	if err := ctrl.auth.UpdateRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update role"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Role updated"})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	if c.Param("id") == c.GetString("user_id") {
		c.JSON(400, gin.H{"success": false, "message": "Cannot delete your own account"})
		return
	}

	if err := ctrl.auth.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User deleted"})
}
