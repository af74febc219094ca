package models

import (
	"fmt"
	"strings"
)

// Brief length bounds for the text endpoints.
const (
	BriefMaxLen     = 1000
	BriefFileMinLen = 5
)

// TextBriefRequest is the body for the text-brief generation endpoint.
type TextBriefRequest struct {
	TextBrief string `json:"text_brief" example:"Eco-friendly bamboo toothbrush with soft bristles"`
}

func (r TextBriefRequest) Validate() error {
	if strings.TrimSpace(r.TextBrief) == "" {
		return fmt.Errorf("text_brief is empty")
	}
	if len(r.TextBrief) > BriefMaxLen {
		return fmt.Errorf("text_brief exceeds %d characters", BriefMaxLen)
	}
	return nil
}

// Caption is one generated caption with its tone label.
// Tones are conventionally Casual, Professional or Playful but the set
// is not closed: the model may return others.
type Caption struct {
	Caption string `json:"caption" example:"Transform your smile naturally! 🌱"`
	Tone    string `json:"tone" example:"Casual"`
}

// HashtagSet groups hashtags under a category label
// (conventionally Trending, Niche or Branded).
type HashtagSet struct {
	Hashtags []string `json:"hashtags"`
	Category string   `json:"category" example:"Trending"`
}

// PostingTime is the recommended publishing slot.
type PostingTime struct {
	Time   string `json:"time" example:"7:00 AM - 9:00 AM"`
	Day    string `json:"day" example:"Tuesday or Thursday"`
	Reason string `json:"reason" example:"Morning routine content performs best during commute hours"`
}

// CaptionBundle is the canonical response shape of every generation
// endpoint. Every bundle returned to a caller carries all four fields;
// the fallback generator guarantees this even when the model misbehaves.
type CaptionBundle struct {
	Captions    []Caption    `json:"captions"`
	HashtagSets []HashtagSet `json:"hashtag_sets"`
	PostingTime PostingTime  `json:"posting_time"`
	ContentType string       `json:"content_type" example:"Product - Eco/Lifestyle"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Server is running"`
}

// ErrorResponse is the body of every non-200 response.
type ErrorResponse struct {
	Error string `json:"error"`
}
