// README: Media intake service; persists uploads and returns placeholder notes.
package vault

import (
	"context"
	"time"

	"tripmate/internal/types"
)

type Service struct {
	store *Store
	blobs *BlobStorage
}

func NewService(store *Store, blobs *BlobStorage) *Service {
	return &Service{store: store, blobs: blobs}
}

// StoreImage writes the payload to disk, records a vault document, and
// returns a note chosen from the declared filename. There is no real image
// recognition.
func (s *Service) StoreImage(ctx context.Context, userID types.ID, filename, contentType string, payload []byte) (string, error) {
	if err := s.persist(ctx, KindImage, userID, filename, contentType, payload); err != nil {
		return "", err
	}
	return classifyImage(filename), nil
}

// StoreVoice writes the payload to disk, records a vault document, and
// returns the fixed placeholder transcript.
func (s *Service) StoreVoice(ctx context.Context, userID types.ID, filename, contentType string, payload []byte) (string, error) {
	if err := s.persist(ctx, KindVoice, userID, filename, contentType, payload); err != nil {
		return "", err
	}
	return VoiceTranscript, nil
}

func (s *Service) persist(ctx context.Context, kind Kind, userID types.ID, filename, contentType string, payload []byte) error {
	if contentType == "" {
		contentType = "unknown"
	}
	path, err := s.blobs.Write(kind, filename, payload)
	if err != nil {
		return err
	}
	return s.store.CreateDocument(ctx, &Document{
		UserID:      userID,
		Filename:    filename,
		Filetype:    contentType,
		Size:        int64(len(payload)),
		StoragePath: path,
		CreatedAt:   time.Now().UTC(),
	})
}
