package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mentorbay/api/internal/helpers"
	"github.com/mentorbay/api/internal/services"
	"github.com/supabase-community/gotrue-go/types"
)

func Login(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		authResponse, err := p.SignIn(req.Email, req.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error(), "message": "invalid email or password"})
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"

		if tokenRes, ok := authResponse.(*types.TokenResponse); ok && tokenRes.AccessToken != "" {
			// Access token - expires in 1 hour (3600 seconds)
			c.SetCookie(
				"access_token",
				tokenRes.AccessToken,
				tokenRes.ExpiresIn,
				"/",
				"", // let Gin pick current domain
				isProduction,
				true,
			)

			// Refresh token - expires in 30 days
			c.SetCookie(
				"refresh_token",
				tokenRes.RefreshToken,
				3600*24*30,
				"/",
				"",
				isProduction,
				true,
			)

			// Return user info but not tokens
			c.JSON(200, gin.H{
				"user": tokenRes.User,
			})
			return
		}

		c.JSON(500, gin.H{"error": "invalid token response"})
	}
}

// Refresh exchanges the refresh_token cookie for a fresh session and
// re-issues both cookies.
func Refresh(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(401, gin.H{"error": "no refresh token"})
			return
		}

		refreshResponse, err := p.RefreshToken(refreshToken)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error()})
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		if tokenRes, ok := refreshResponse.(*types.TokenResponse); ok && tokenRes.AccessToken != "" {
			c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
			c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)
			c.JSON(200, gin.H{"user": tokenRes.User})
			return
		}

		c.JSON(500, gin.H{"error": "invalid token response"})
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		// Clear all auth cookies
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}

// Me echoes the resolved session for the authenticated layout shell.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}

		c.JSON(200, gin.H{
			"user_id":     claims.UserID,
			"email":       claims.Email,
			"role":        claims.GetSafeRole(),
			"full_name":   claims.FullName,
			"avatar_url":  claims.AvatarURL,
			"country":     claims.Country,
			"is_stalwart": claims.IsStalwart,
		})
	}
}

// getClaims pulls the EnhancedClaims stored by AuthMiddleware. It writes the
// error response itself so call sites stay flat.
func getClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	claims, exists := c.Get("user")
	if !exists {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userClaims, ok := claims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(500, gin.H{"error": "Invalid user claims"})
		return nil, false
	}
	return userClaims, true
}
