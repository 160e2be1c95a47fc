package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trendkart/middleware"
	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

const sessionMaxAge = 7 * 24 * 60 * 60

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ctrl *AuthController) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

// Register godoc
// @Summary Register new user
// @Description Create a customer account and start a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to register user"})
		return
	}

	ctrl.setSessionCookie(c, resp.Token)
	c.JSON(201, gin.H{"success": true, "message": "Account created", "data": resp})
}

// Login godoc
// @Summary Login
// @Description Verify credentials and start a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	ctrl.setSessionCookie(c, resp.Token)
	c.JSON(200, gin.H{"success": true, "message": "Logged in", "data": resp})
}

// Logout godoc
// @Summary Logout
// @Description Clear the session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// Me godoc
// @Summary Current session
// @Description Return the authenticated session principal
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Session retrieved",
		"data": gin.H{
			"id":    c.GetString("user_id"),
			"name":  c.GetString("user_name"),
			"email": c.GetString("user_email"),
			"role":  c.GetString("user_role"),
		},
	})
}
