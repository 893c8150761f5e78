// README: Blob storage; uploads written verbatim under a local content root.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BlobStorage writes payloads under root/<kind>/. No encryption, no
// deduplication; names combine a timestamp and a random suffix so two uploads
// of the same filename cannot collide.
type BlobStorage struct {
	root string
}

func NewBlobStorage(root string) *BlobStorage {
	return &BlobStorage{root: root}
}

func (b *BlobStorage) Write(kind Kind, filename string, payload []byte) (string, error) {
	dir := filepath.Join(b.root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s_%s", time.Now().UnixNano(), uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
