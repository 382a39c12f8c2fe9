package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Password is required")
		return
	}

	token, ok := ctrl.authService.Login(c.Request.Context(), req.Password)
	if !ok {
		errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials, "Wrong password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"isAdmin": true,
	})
}

// Logout handles POST /api/v1/auth/logout
// Always succeeds; an absent or invalid token is simply ignored.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		ctrl.authService.Logout(c.Request.Context(), token)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/v1/auth/me (behind the admin middleware). The
// storefront calls it on load to restore the admin state.
func (ctrl *AuthController) Me(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	c.JSON(http.StatusOK, gin.H{
		"isAdmin":   middleware.IsAdmin(c),
		"sessionId": sessionID,
	})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
