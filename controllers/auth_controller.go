package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/config"
	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

const sessionLifetime = 7 * 24 * time.Hour

// AuthController handles the session exchange against the upstream identity
// provider and the session lifecycle endpoints.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// sessionExchangeData is the upstream provider's response for a one-time
// session id.
type sessionExchangeData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

var exchangeClient = &http.Client{Timeout: 10 * time.Second}

// exchangeURL resolves the provider endpoint; a var so tests can point it at
// a local server.
var exchangeURL = func() string { return config.Get().SessionExchangeURL }

// CreateSession exchanges a one-time session id for a session token, creating
// the user and default preferences on first login. Only one session per user
// is kept: all prior sessions are deleted before the new one is inserted.
func (a *AuthController) CreateSession(ctx *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	data, err := exchangeSession(ctx.Request.Context(), req.SessionID)
	if err != nil {
		utils.Sugar.Warnf("session exchange rejected: %v", err)
		utils.Error(ctx, http.StatusUnauthorized, "Invalid session")
		return
	}

	var user models.User
	err = a.db.Where("email = ?", data.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			UserID:    newUserID(),
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := a.db.Create(&user).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to create user")
			return
		}
		prefs := models.DefaultPreferences(user.UserID)
		if err := a.db.Create(&prefs).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to create preferences")
			return
		}
	} else if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to look up user")
		return
	}

	// Single-session-per-user policy. Delete-then-insert is not transactional
	// on purpose: a crash in between leaves zero sessions, never two.
	if err := a.db.Where("user_id = ?", user.UserID).Delete(&models.UserSession{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to invalidate sessions")
		return
	}
	session := models.UserSession{
		UserID:       user.UserID,
		SessionToken: data.SessionToken,
		ExpiresAt:    time.Now().UTC().Add(sessionLifetime),
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.db.Create(&session).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create session")
		return
	}

	setSessionCookie(ctx, data.SessionToken, int(sessionLifetime.Seconds()))
	ctx.JSON(http.StatusOK, gin.H{
		"user":            user,
		"setup_completed": a.setupCompleted(user.UserID),
	})
}

// Me returns the current user and the setup flag.
func (a *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"user":            user,
		"setup_completed": a.setupCompleted(user.UserID),
	})
}

// Logout deletes the user's sessions and clears the cookie.
func (a *AuthController) Logout(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if err := a.db.Where("user_id = ?", user.UserID).Delete(&models.UserSession{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to invalidate sessions")
		return
	}
	setSessionCookie(ctx, "", -1)
	utils.Message(ctx, "Logged out")
}

func (a *AuthController) setupCompleted(userID string) bool {
	var prefs models.UserPreferences
	if err := a.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return false
	}
	return prefs.SetupCompleted
}

// exchangeSession swaps the one-time id for user data at the configured
// identity provider.
func exchangeSession(ctx context.Context, sessionID string) (*sessionExchangeData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exchangeURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := exchangeClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session exchange status %d", resp.StatusCode)
	}

	var data sessionExchangeData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.Email == "" || data.SessionToken == "" {
		return nil, errors.New("session exchange response incomplete")
	}
	return &data, nil
}

// newUserID derives a stable opaque id for a new user.
func newUserID() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// setSessionCookie writes the HTTP-only, secure, cross-site session cookie.
func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", true, true)
}
