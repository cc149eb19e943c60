package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVisionService struct {
	gotMime  string
	gotBytes int
}

func (f *fakeVisionService) Analyze(_ context.Context, image []byte, mimeType string) (string, error) {
	f.gotMime = mimeType
	f.gotBytes = len(image)
	return "a cup of herbal tea on a table", nil
}

func uploadImage(t *testing.T, e *echo.Echo, field string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/vision/analyze", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeImage(t *testing.T) {
	svc, e := newTestService(t, &fakeChatService{})
	fake := &fakeVisionService{}
	svc.VisionService = fake

	rec := uploadImage(t, e, "file", []byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VisionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a cup of herbal tea on a table", resp.Result)
	assert.Equal(t, 4, fake.gotBytes)
}

func TestAnalyzeImageMissingFile(t *testing.T) {
	svc, e := newTestService(t, &fakeChatService{})
	svc.VisionService = &fakeVisionService{}

	rec := uploadImage(t, e, "attachment", []byte{0x01})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
