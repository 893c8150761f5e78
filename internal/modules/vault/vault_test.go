// README: Blob storage and image classification tests.
package vault

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorageWrite(t *testing.T) {
	root := t.TempDir()
	blobs := NewBlobStorage(root)

	payload := []byte("jpeg bytes")
	path, err := blobs.Write(KindImage, "ticket.jpg", payload)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, filepath.Join(root, "images")), "path = %s", path)
	assert.True(t, strings.HasSuffix(path, "_ticket.jpg"), "path = %s", path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestBlobStorageWriteNoCollision(t *testing.T) {
	blobs := NewBlobStorage(t.TempDir())

	first, err := blobs.Write(KindVoice, "note.ogg", []byte("a"))
	require.NoError(t, err)
	second, err := blobs.Write(KindVoice, "note.ogg", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// The client-supplied filename is flattened, so path traversal never escapes
// the content root.
func TestBlobStorageStripsDirectories(t *testing.T) {
	root := t.TempDir()
	blobs := NewBlobStorage(root)

	path, err := blobs.Write(KindImage, "../../etc/passwd", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "images"), filepath.Dir(path))
}

func TestClassifyImage(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"flight-ticket.jpg", noteTravelDocument},
		{"VISA_scan.png", noteTravelDocument},
		{"boarding-pass.pdf", noteTravelDocument},
		{"my_rail_pass.jpg", noteTravelDocument},
		{"beach.jpg", noteGenericImage},
		{"IMG_2041.HEIC", noteGenericImage},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyImage(tc.filename), "filename %s", tc.filename)
	}
}
