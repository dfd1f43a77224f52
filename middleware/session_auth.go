package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "current_user"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

// SessionAuth resolves the session token from the cookie or the Bearer
// header to a user on every protected request. Nothing is cached across
// requests; expiry is checked against UTC now.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
			ctx.Abort()
			return
		}

		var session models.UserSession
		if err := db.Where("session_token = ?", token).First(&session).Error; err != nil {
			utils.Error(ctx, http.StatusUnauthorized, "Invalid session")
			ctx.Abort()
			return
		}

		if session.ExpiresAt.Before(time.Now().UTC()) {
			utils.Error(ctx, http.StatusUnauthorized, "Session expired")
			ctx.Abort()
			return
		}

		var user models.User
		if err := db.Where("user_id = ?", session.UserID).First(&user).Error; err != nil {
			utils.Error(ctx, http.StatusUnauthorized, "User not found")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user stored by SessionAuth.
func CurrentUser(ctx *gin.Context) (models.User, bool) {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func extractToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
