package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"rentdesk/server/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.PublicBaseURL = "http://localhost:5250/uploads/"
	cfg.Storage.MaxUploadMB = 1

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := NewStore(cfg, logger)
	require.NoError(t, err)
	return s
}

// uploadHeader builds a multipart.FileHeader the way gin would hand it
// to a handler.
func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveAndRemove(t *testing.T) {
	s := newTestStore(t)

	object, err := s.Save(uploadHeader(t, "lease agreement.PDF", "contents"))
	require.NoError(t, err)

	assert.Equal(t, "lease agreement.PDF", object.Name)
	assert.Equal(t, int64(len("contents")), object.Size)
	assert.Equal(t, ".pdf", filepath.Ext(object.Key))
	assert.Equal(t, "http://localhost:5250/uploads/"+object.Key, object.URL)

	data, err := os.ReadFile(filepath.Join(s.Dir(), object.Key))
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))

	s.Remove(object.Key)
	_, err = os.Stat(filepath.Join(s.Dir(), object.Key))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is not an error
	s.Remove(object.Key)
}

func TestSave_SizeLimit(t *testing.T) {
	s := newTestStore(t)

	big := make([]byte, 2<<20)
	_, err := s.Save(uploadHeader(t, "huge.bin", string(big)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload limit")
}
