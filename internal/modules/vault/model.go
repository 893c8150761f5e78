// README: Vault document model and the placeholder classification notes.
package vault

import (
	"strings"
	"time"

	"tripmate/internal/types"
)

// Kind selects the subdirectory an upload is written to.
type Kind string

const (
	KindImage Kind = "images"
	KindVoice Kind = "voice"
)

// Document records an uploaded blob. Size is measured from the payload, never
// taken from the client.
type Document struct {
	UserID      types.ID  `json:"user_id"`
	Filename    string    `json:"filename"`
	Filetype    string    `json:"filetype"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	noteTravelDocument = "Looks like a travel document or ticket. Check names, dates, and QR validity."
	noteGenericImage   = "Image saved. If this is a place/food, I can guide on safety, hygiene and directions."
)

// VoiceTranscript is the fixed placeholder returned for every audio upload;
// there is no real speech-to-text.
const VoiceTranscript = "Voice received. For now I converted it to: 'Help me plan cheap local transport.'"

var documentKeywords = []string{"ticket", "visa", "pass", "boarding"}

// classifyImage picks the placeholder note from the declared filename alone.
func classifyImage(filename string) string {
	lower := strings.ToLower(filename)
	for _, k := range documentKeywords {
		if strings.Contains(lower, k) {
			return noteTravelDocument
		}
	}
	return noteGenericImage
}
