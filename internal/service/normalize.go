package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/captionsmith/backend/internal/models"
)

var (
	// ErrMalformedJSON reports model output that does not decode as JSON.
	ErrMalformedJSON = errors.New("model output is not valid JSON")
	// ErrMissingFields reports decoded output lacking a required top-level key.
	ErrMissingFields = errors.New("model output is missing required fields")
)

var requiredKeys = []string{"captions", "hashtag_sets", "posting_time", "content_type"}

// Normalize turns raw model text into a CaptionBundle. The model is
// instructed to emit bare JSON but frequently wraps it in markdown
// fencing or prefixes a language tag; both are stripped before
// decoding. The four top-level keys must be present; inner shapes pass
// through as the model produced them.
func Normalize(raw string) (*models.CaptionBundle, error) {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```") {
		parts := strings.Split(clean, "```")
		if len(parts) >= 2 {
			clean = parts[1]
		}
		clean = strings.TrimPrefix(clean, "json")
	}
	clean = strings.TrimSpace(clean)

	var fields map[string]json.RawMessage
	if err := sonic.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingFields, key)
		}
	}

	var bundle models.CaptionBundle
	if err := sonic.Unmarshal([]byte(clean), &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return &bundle, nil
}
