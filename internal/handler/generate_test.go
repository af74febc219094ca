package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/captionsmith/backend/internal/handler"
	"github.com/captionsmith/backend/internal/models"
	"github.com/captionsmith/backend/internal/service"
	"github.com/captionsmith/backend/internal/upload"
)

type stubService struct {
	bundle *models.CaptionBundle
	err    error

	imageCalls int
	briefCalls int
	lastBrief  string
	lastSource string
}

func (s *stubService) FromImage(_ context.Context, _ []byte, _ string) (*models.CaptionBundle, error) {
	s.imageCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.bundle, nil
}

func (s *stubService) FromBrief(_ context.Context, brief, source string) *models.CaptionBundle {
	s.briefCalls++
	s.lastBrief = brief
	s.lastSource = source
	return s.bundle
}

func newHandler(t *testing.T, svc *stubService, maxSize int64) (*handler.GenerateHandler, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := upload.NewStore(dir)
	require.NoError(t, err)
	return handler.NewGenerateHandler(svc, upload.NewValidator(maxSize), store), dir
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeBundle(t *testing.T, body *bytes.Buffer) models.CaptionBundle {
	t.Helper()
	var bundle models.CaptionBundle
	require.NoError(t, sonic.ConfigDefault.NewDecoder(body).Decode(&bundle))
	return bundle
}

func decodeError(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(body).Decode(&resp))
	return resp.Error
}

func requireDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "upload dir must be empty after the request")
}

func TestHealth(t *testing.T) {
	h, _ := newHandler(t, &stubService{}, 1<<20)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.HealthResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "healthy", resp.Status)
}

func TestGenerateFromTextOK(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("x")}
	h, _ := newHandler(t, svc, 1<<20)

	body := strings.NewReader(`{"text_brief": "Eco-friendly bamboo toothbrush with soft bristles"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate/text", body)
	rec := httptest.NewRecorder()
	h.GenerateFromText(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	bundle := decodeBundle(t, rec.Body)
	require.Len(t, bundle.Captions, 3)
	require.Equal(t, "Eco-friendly bamboo toothbrush with soft bristles", svc.lastBrief)
	require.Equal(t, "brief", svc.lastSource)
}

func TestGenerateFromTextRejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"text_brief": `},
		{"empty brief", `{"text_brief": ""}`},
		{"whitespace brief", `{"text_brief": "   "}`},
		{"oversized brief", `{"text_brief": "` + strings.Repeat("a", 1001) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{bundle: service.Fallback("x")}
			h, _ := newHandler(t, svc, 1<<20)

			req := httptest.NewRequest(http.MethodPost, "/generate/text", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.GenerateFromText(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Zero(t, svc.briefCalls, "rejected requests must not reach the model")
		})
	}
}

func TestGenerateFromImageBadExtension(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("x")}
	h, dir := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "photo.bmp", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/generate/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decodeError(t, rec.Body)
	for _, ext := range []string{"jpg", "jpeg", "png", "webp", "gif"} {
		require.Contains(t, msg, ext)
	}
	require.Zero(t, svc.imageCalls)
	requireDirEmpty(t, dir)
}

func TestGenerateFromImageTooLarge(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("x")}
	h, dir := newHandler(t, svc, 16)

	body, contentType := multipartBody(t, "photo.png", bytes.Repeat([]byte{0xAA}, 17))
	req := httptest.NewRequest(http.MethodPost, "/generate/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromImage(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Zero(t, svc.imageCalls)
	requireDirEmpty(t, dir)
}

func TestGenerateFromImageSuccessCleansUp(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("product image")}
	h, dir := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "photo.png", []byte("pretend image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/generate/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromImage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	bundle := decodeBundle(t, rec.Body)
	require.Len(t, bundle.Captions, 3)
	require.Equal(t, 1, svc.imageCalls)
	requireDirEmpty(t, dir)
}

func TestGenerateFromImageCorruptedCleansUp(t *testing.T) {
	svc := &stubService{err: service.ErrInvalidImage}
	h, dir := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "photo.png", []byte("not really a png"))
	req := httptest.NewRequest(http.MethodPost, "/generate/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec.Body), "corrupted image")
	requireDirEmpty(t, dir)
}

func TestGenerateFromImageUnexpectedErrorIsSanitized(t *testing.T) {
	svc := &stubService{err: context.DeadlineExceeded}
	h, dir := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "photo.png", []byte("bytes"))
	req := httptest.NewRequest(http.MethodPost, "/generate/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromImage(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "an unexpected error occurred", decodeError(t, rec.Body))
	requireDirEmpty(t, dir)
}

func TestGenerateFromImageMissingFile(t *testing.T) {
	h, _ := newHandler(t, &stubService{}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/generate/image", strings.NewReader("no multipart"))
	rec := httptest.NewRecorder()
	h.GenerateFromImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateFromFileOK(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("x")}
	h, _ := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "brief.txt", []byte("  Eco-friendly bamboo toothbrush  \n"))
	req := httptest.NewRequest(http.MethodPost, "/generate/file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Eco-friendly bamboo toothbrush", svc.lastBrief)
	require.Equal(t, "file", svc.lastSource)
}

func TestGenerateFromFileTooShort(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("x")}
	h, _ := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "brief.txt", []byte("  hi \n"))
	req := httptest.NewRequest(http.MethodPost, "/generate/file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromFile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec.Body), "too short")
	require.Zero(t, svc.briefCalls)
}

func TestGenerateFromFileWrongExtension(t *testing.T) {
	svc := &stubService{bundle: service.Fallback("x")}
	h, _ := newHandler(t, svc, 1<<20)

	body, contentType := multipartBody(t, "brief.md", []byte("long enough content"))
	req := httptest.NewRequest(http.MethodPost, "/generate/file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.GenerateFromFile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec.Body), "txt")
	require.Zero(t, svc.briefCalls)
}
