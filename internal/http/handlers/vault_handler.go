// README: Media intake handlers: image and voice uploads.
package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/types"
)

// VaultService is the slice of the media vault the HTTP layer needs.
type VaultService interface {
	StoreImage(ctx context.Context, userID types.ID, filename, contentType string, payload []byte) (string, error)
	StoreVoice(ctx context.Context, userID types.ID, filename, contentType string, payload []byte) (string, error)
}

type VaultHandler struct {
	users UserService
	vault VaultService
	chat  ChatService
}

func NewVaultHandler(users UserService, vault VaultService, chatSvc ChatService) *VaultHandler {
	return &VaultHandler{users: users, vault: vault, chat: chatSvc}
}

// Image handles POST /api/image (multipart form: user_id, file).
func (h *VaultHandler) Image(c *gin.Context) {
	userID, fh, ok := h.uploadForm(c)
	if !ok {
		return
	}
	payload, err := readUpload(fh)
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable file")
		return
	}
	ctx := c.Request.Context()
	if _, err := h.users.EnsureUser(ctx, userID); err != nil {
		writeServiceError(c, err)
		return
	}
	note, err := h.vault.StoreImage(ctx, userID, fh.Filename, fh.Header.Get("Content-Type"), payload)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "message": note})
}

// Voice handles POST /api/voice (multipart form: user_id, file). The stored
// clip is transcribed and the transcript is fed through the chat pipeline.
func (h *VaultHandler) Voice(c *gin.Context) {
	userID, fh, ok := h.uploadForm(c)
	if !ok {
		return
	}
	payload, err := readUpload(fh)
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable file")
		return
	}
	ctx := c.Request.Context()
	if _, err := h.users.EnsureUser(ctx, userID); err != nil {
		writeServiceError(c, err)
		return
	}
	transcript, err := h.vault.StoreVoice(ctx, userID, fh.Filename, fh.Header.Get("Content-Type"), payload)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	reply, err := h.chat.VoiceReply(ctx, userID, transcript)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "transcript": transcript, "reply": reply.Reply})
}

func (h *VaultHandler) uploadForm(c *gin.Context) (types.ID, *multipart.FileHeader, bool) {
	userID := c.PostForm("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return "", nil, false
	}
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "missing file")
		return "", nil, false
	}
	return types.ID(userID), fh, true
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
