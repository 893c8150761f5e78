// README: User handlers: init, profile, coins, reward, redeem, passes.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/modules/user"
	"tripmate/internal/types"
)

// UserService is the slice of the user ledger the HTTP layer needs.
type UserService interface {
	EnsureUser(ctx context.Context, userID types.ID) (user.Profile, error)
	Credit(ctx context.Context, userID types.ID, action string, coins int, notes *string) (int, error)
	Redeem(ctx context.Context, userID types.ID, feature string, class user.DurationClass) (user.Pass, error)
	Passes(ctx context.Context, userID types.ID) ([]user.Pass, error)
}

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

type initReq struct {
	UserID string `json:"user_id"`
}

// Init handles POST /api/init.
func (h *UserHandler) Init(c *gin.Context) {
	var req initReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	p, err := h.users.EnsureUser(c.Request.Context(), types.ID(req.UserID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "user": gin.H{"user_id": p.UserID, "coins": p.Coins}})
}

// Profile handles GET /api/profile/:user_id.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	p, err := h.users.EnsureUser(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "user": gin.H{
		"user_id":  p.UserID,
		"coins":    p.Coins,
		"language": p.Language,
	}})
}

// Coins handles GET /api/coins/:user_id.
func (h *UserHandler) Coins(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	p, err := h.users.EnsureUser(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "coins": p.Coins})
}

type rewardReq struct {
	UserID string  `json:"user_id"`
	Action string  `json:"action"`
	Coins  int     `json:"coins"`
	Notes  *string `json:"notes"`
}

// Reward handles POST /api/reward. The supplied amount is trusted; negative
// values are clamped to zero by the ledger.
func (h *UserHandler) Reward(c *gin.Context) {
	var req rewardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || req.Action == "" {
		writeError(c, http.StatusBadRequest, "missing user_id or action")
		return
	}
	balance, err := h.users.Credit(c.Request.Context(), types.ID(req.UserID), req.Action, req.Coins, req.Notes)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "coins": balance})
}

type redeemReq struct {
	UserID   string `json:"user_id"`
	Feature  string `json:"feature"`
	Duration string `json:"duration"`
}

// Redeem handles POST /api/redeem. An insufficient balance is a structured
// result, not an error status.
func (h *UserHandler) Redeem(c *gin.Context) {
	var req redeemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || req.Feature == "" {
		writeError(c, http.StatusBadRequest, "missing user_id or feature")
		return
	}
	if req.Duration == "" {
		req.Duration = "1d"
	}
	class, err := user.ParseDurationClass(req.Duration)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	pass, err := h.users.Redeem(c.Request.Context(), types.ID(req.UserID), req.Feature, class)
	if errors.Is(err, user.ErrInsufficientCoins) {
		writeJSON(c, http.StatusOK, gin.H{"ok": false, "error": "Not enough coins"})
		return
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "feature": pass.Feature, "expires_at": pass.ExpiresAt})
}

// Passes handles GET /api/passes/:user_id.
func (h *UserHandler) Passes(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	passes, err := h.users.Passes(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if passes == nil {
		passes = []user.Pass{}
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "passes": passes})
}
