package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/captionsmith/backend/internal/service"
)

type fakeModel struct {
	text string
	err  error

	textCalls   int
	visionCalls int
	lastPrompt  string
	lastMime    string
}

func (f *fakeModel) GenerateText(_ context.Context, prompt string) (string, error) {
	f.textCalls++
	f.lastPrompt = prompt
	return f.text, f.err
}

func (f *fakeModel) GenerateVision(_ context.Context, prompt string, _ []byte, mimeType string) (string, error) {
	f.visionCalls++
	f.lastPrompt = prompt
	f.lastMime = mimeType
	return f.text, f.err
}

type mapCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string]string)}
}

func (c *mapCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.data[key]
	return val, ok, nil
}

func (c *mapCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func newService(model service.ModelClient) *service.CaptionService {
	return service.NewCaptionService(zerolog.Nop(), model)
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4))))
	return buf.Bytes()
}

func TestFromBriefModelUnreachableServesFallback(t *testing.T) {
	brief := "Eco-friendly bamboo toothbrush with soft bristles"
	model := &fakeModel{err: errors.New("transport: connection refused")}

	bundle := newService(model).FromBrief(context.Background(), brief, "brief")

	require.Equal(t, service.Fallback(brief), bundle)
	require.Contains(t, bundle.Captions[0].Caption, brief)
}

func TestFromBriefMalformedOutputServesFallback(t *testing.T) {
	brief := "handmade ceramic mug"
	model := &fakeModel{text: "I'd be happy to help! Here are some captions..."}

	bundle := newService(model).FromBrief(context.Background(), brief, "brief")

	require.Equal(t, service.Fallback(brief), bundle)
}

func TestFromBriefMissingKeysServesFallback(t *testing.T) {
	brief := "handmade ceramic mug"
	model := &fakeModel{text: `{"captions": []}`}

	bundle := newService(model).FromBrief(context.Background(), brief, "brief")

	require.Equal(t, service.Fallback(brief), bundle)
}

func TestFromBriefFencedOutputParsed(t *testing.T) {
	model := &fakeModel{text: "```json\n" + wellFormed + "\n```"}

	bundle := newService(model).FromBrief(context.Background(), "brief text", "brief")

	require.Len(t, bundle.Captions, 3)
	require.Equal(t, "Product - Eco/Lifestyle", bundle.ContentType)
	require.Contains(t, model.lastPrompt, "brief text")
	require.Contains(t, model.lastPrompt, `"posting_time"`)
}

func TestFromImageInvalidBytes(t *testing.T) {
	model := &fakeModel{text: wellFormed}
	svc := newService(model)

	_, err := svc.FromImage(context.Background(), []byte("not an image"), "photo.png")

	require.ErrorIs(t, err, service.ErrInvalidImage)
	require.Zero(t, model.visionCalls, "model must not be called for undecodable uploads")
}

func TestFromImageSuccess(t *testing.T) {
	model := &fakeModel{text: wellFormed}
	svc := newService(model)

	bundle, err := svc.FromImage(context.Background(), tinyPNG(t), "photo.png")

	require.NoError(t, err)
	require.Len(t, bundle.Captions, 3)
	require.Equal(t, 1, model.visionCalls)
	require.Equal(t, "image/png", model.lastMime)
	require.Contains(t, model.lastPrompt, "landscape standard-resolution PNG")
}

func TestFromImageModelErrorServesGenericHint(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exceeded")}
	svc := newService(model)

	bundle, err := svc.FromImage(context.Background(), tinyPNG(t), "photo.png")

	require.NoError(t, err)
	require.Equal(t, service.Fallback("product image"), bundle)
}

func TestFromBriefCachesParsedBundles(t *testing.T) {
	model := &fakeModel{text: wellFormed}
	svc := newService(model)
	svc.SetCacheClient(newMapCache())

	first := svc.FromBrief(context.Background(), "cached brief", "brief")
	second := svc.FromBrief(context.Background(), "cached brief", "brief")

	require.Equal(t, first, second)
	require.Equal(t, 1, model.textCalls, "second request must be served from cache")
}

func TestFromBriefNeverCachesFallbacks(t *testing.T) {
	model := &fakeModel{err: errors.New("down")}
	svc := newService(model)
	cache := newMapCache()
	svc.SetCacheClient(cache)

	svc.FromBrief(context.Background(), "brief", "brief")

	require.Empty(t, cache.data)
	require.Equal(t, 1, model.textCalls)
}
