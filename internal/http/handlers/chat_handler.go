// README: Chat handlers: chat, history, daily tips, translate.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/modules/chat"
	"tripmate/internal/types"
)

// ChatService is the slice of the chat module the HTTP layer needs.
type ChatService interface {
	Respond(ctx context.Context, userID types.ID, message, locale string) (chat.Reply, error)
	VoiceReply(ctx context.Context, userID types.ID, transcript string) (chat.Reply, error)
	History(ctx context.Context, userID types.ID) ([]chat.Message, error)
}

type ChatHandler struct {
	users UserService
	chat  ChatService
}

func NewChatHandler(users UserService, chatSvc ChatService) *ChatHandler {
	return &ChatHandler{users: users, chat: chatSvc}
}

type chatReq struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Locale  string `json:"locale"`
}

// Chat handles POST /api/chat. The profile is ensured first so the very
// first message a client ever sends still lands on a ledger row.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing user_id or message")
		return
	}
	if req.Locale == "" {
		req.Locale = "en"
	}
	ctx := c.Request.Context()
	if _, err := h.users.EnsureUser(ctx, types.ID(req.UserID)); err != nil {
		writeServiceError(c, err)
		return
	}
	reply, err := h.chat.Respond(ctx, types.ID(req.UserID), req.Message, req.Locale)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, reply)
}

// History handles GET /api/history/:user_id.
func (h *ChatHandler) History(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	msgs, err := h.chat.History(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "messages": msgs})
}

// Tips handles GET /api/tips.
func (h *ChatHandler) Tips(c *gin.Context) {
	locale := c.DefaultQuery("locale", "en")
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "tips": chat.DailyTips(locale)})
}

type translateReq struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// Translate handles POST /api/translate.
func (h *ChatHandler) Translate(c *gin.Context) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Target == "" {
		req.Target = "en"
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "text": chat.Translate(req.Text, req.Target)})
}
