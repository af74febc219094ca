package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/captionsmith/backend/internal/imagemeta"
	"github.com/captionsmith/backend/internal/metrics"
	"github.com/captionsmith/backend/internal/models"
)

// ErrInvalidImage reports an upload that is not a decodable image.
var ErrInvalidImage = errors.New("invalid or corrupted image file")

// ModelClient is the generative endpoint the service talks to.
type ModelClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// Cache stores successfully parsed bundles keyed by request content.
// Fallback bundles are never cached.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type CaptionService struct {
	logger zerolog.Logger
	model  ModelClient
	cache  Cache
}

func NewCaptionService(logger zerolog.Logger, model ModelClient) *CaptionService {
	return &CaptionService{
		logger: logger,
		model:  model,
	}
}

func (s *CaptionService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// FromImage generates a caption bundle for an uploaded product image.
// A payload that does not decode returns ErrInvalidImage so the caller
// can report a client-side failure; every model or parse failure past
// that point is absorbed by the fallback bundle.
func (s *CaptionService) FromImage(ctx context.Context, data []byte, filename string) (*models.CaptionBundle, error) {
	meta, err := imagemeta.Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	key := cacheKey("image", data)
	if bundle := s.fromCache(ctx, key); bundle != nil {
		return bundle, nil
	}

	prompt := buildImagePrompt(imagemeta.Describe(meta))

	start := time.Now()
	raw, err := s.model.GenerateVision(ctx, prompt, data, imagemeta.MIMEType(meta))
	metrics.ModelCallDuration("image", time.Since(start))

	return s.finish(ctx, "image", key, raw, err, "product image"), nil
}

// FromBrief generates a caption bundle for a free-text brief. It never
// fails: model trouble degrades to the fallback bundle with the brief
// as the content hint. Source labels the inbound surface for metrics
// ("brief" or "file").
func (s *CaptionService) FromBrief(ctx context.Context, brief string, source string) *models.CaptionBundle {
	key := cacheKey(source, []byte(brief))
	if bundle := s.fromCache(ctx, key); bundle != nil {
		return bundle
	}

	prompt := buildTextPrompt(brief)

	start := time.Now()
	raw, err := s.model.GenerateText(ctx, prompt)
	metrics.ModelCallDuration(source, time.Since(start))

	return s.finish(ctx, source, key, raw, err, brief)
}

// finish resolves a model round-trip into a schema-valid bundle. Model
// and parse failures are logged and counted but never escape: the
// fallback bundle keeps the response contract intact.
func (s *CaptionService) finish(ctx context.Context, source, key, raw string, callErr error, hint string) *models.CaptionBundle {
	if callErr != nil {
		s.logger.Error().Err(callErr).
			Str("source", source).
			Msg("model call failed, serving fallback")
		metrics.GenerationTotal(source, "fallback")
		metrics.FallbackTotal("model_error")
		return Fallback(hint)
	}

	bundle, err := Normalize(raw)
	if err != nil {
		reason := "bad_json"
		if errors.Is(err, ErrMissingFields) {
			reason = "missing_fields"
		}
		s.logger.Error().Err(err).
			Str("source", source).
			Str("raw_prefix", truncate(raw, 500)).
			Msg("model output rejected, serving fallback")
		metrics.GenerationTotal(source, "fallback")
		metrics.FallbackTotal(reason)
		return Fallback(hint)
	}

	metrics.GenerationTotal(source, "ok")
	s.toCache(ctx, key, bundle)
	return bundle
}

func (s *CaptionService) fromCache(ctx context.Context, key string) *models.CaptionBundle {
	if s.cache == nil {
		return nil
	}
	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cache get error")
		return nil
	}
	if !found {
		return nil
	}

	var bundle models.CaptionBundle
	if err := sonic.Unmarshal([]byte(cached), &bundle); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt cache entry ignored")
		return nil
	}
	s.logger.Debug().Msg("served from cache")
	return &bundle
}

func (s *CaptionService) toCache(ctx context.Context, key string, bundle *models.CaptionBundle) {
	if s.cache == nil {
		return
	}
	data, err := sonic.Marshal(bundle)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to set cache")
	}
}

func cacheKey(source string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte{':'})
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
