package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/captionsmith/backend/internal/metrics"
	"github.com/captionsmith/backend/internal/models"
	"github.com/captionsmith/backend/internal/service"
	"github.com/captionsmith/backend/internal/upload"
)

// captionService is what the handlers need from the generation layer.
type captionService interface {
	FromImage(ctx context.Context, data []byte, filename string) (*models.CaptionBundle, error)
	FromBrief(ctx context.Context, brief string, source string) *models.CaptionBundle
}

type GenerateHandler struct {
	service   captionService
	validator *upload.Validator
	store     *upload.Store
}

func NewGenerateHandler(service captionService, validator *upload.Validator, store *upload.Store) *GenerateHandler {
	return &GenerateHandler{
		service:   service,
		validator: validator,
		store:     store,
	}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *GenerateHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Message: "AI Social Media Caption Creator API is running",
	})
}

// GenerateFromImage godoc
// @Summary Generate captions from a product image
// @Description Accepts a multipart image upload (jpg, jpeg, png, webp, gif; max 10MB) and returns captions, hashtag sets and a recommended posting time.
// @Tags generate
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Product image"
// @Success 200 {object} models.CaptionBundle
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /generate/image [post]
func (h *GenerateHandler) GenerateFromImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()

	if err := h.validator.CheckFilename(header.Filename, upload.CategoryImage); err != nil {
		metrics.UploadRejectedTotal("extension")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.CheckSize(header.Size); err != nil {
		metrics.UploadRejectedTotal("size")
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}
	if err := h.validator.CheckSize(int64(len(data))); err != nil {
		metrics.UploadRejectedTotal("size")
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	_, cleanup, err := h.store.Save(header.Filename, data)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to persist upload")
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer cleanup()

	bundle, err := h.service.FromImage(r.Context(), data, header.Filename)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImage) {
			metrics.UploadRejectedTotal("decode")
			writeError(w, http.StatusBadRequest, "invalid or corrupted image file")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("image generation failed")
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// GenerateFromText godoc
// @Summary Generate captions from a text brief
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.TextBriefRequest true "Product brief (1-1000 characters)"
// @Success 200 {object} models.CaptionBundle
// @Failure 400 {object} models.ErrorResponse
// @Router /generate/text [post]
func (h *GenerateHandler) GenerateFromText(w http.ResponseWriter, r *http.Request) {
	var req models.TextBriefRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bundle := h.service.FromBrief(r.Context(), req.TextBrief, "brief")
	writeJSON(w, http.StatusOK, bundle)
}

// GenerateFromFile godoc
// @Summary Generate captions from an uploaded text file
// @Description Accepts a .txt upload whose trimmed content is at least 5 characters.
// @Tags generate
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Text brief file (.txt)"
// @Success 200 {object} models.CaptionBundle
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /generate/file [post]
func (h *GenerateHandler) GenerateFromFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()

	if err := h.validator.CheckFilename(header.Filename, upload.CategoryText); err != nil {
		metrics.UploadRejectedTotal("extension")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.CheckSize(header.Size); err != nil {
		metrics.UploadRejectedTotal("size")
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	brief := strings.TrimSpace(string(data))
	if len(brief) < models.BriefFileMinLen {
		metrics.UploadRejectedTotal("too_short")
		writeError(w, http.StatusBadRequest, "text file is empty or too short")
		return
	}

	bundle := h.service.FromBrief(r.Context(), brief, "file")
	writeJSON(w, http.StatusOK, bundle)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, models.ErrorResponse{Error: detail})
}
