package service

import (
	"fmt"

	"github.com/captionsmith/backend/internal/models"
)

// Fallback builds the deterministic, schema-valid bundle served when
// the model call fails or its output cannot be parsed. Only the first
// caption varies with the content hint; posting time and content type
// are identical across invocations.
func Fallback(contentHint string) *models.CaptionBundle {
	return &models.CaptionBundle{
		Captions: []models.Caption{
			{
				Caption: fmt.Sprintf("✨ Discover something amazing! Check out this %s 🌟", contentHint),
				Tone:    "Casual",
			},
			{
				Caption: "Introducing our latest offering. Quality you can trust. 💼",
				Tone:    "Professional",
			},
			{
				Caption: "You're going to love this! 😍 Swipe to see why everyone's talking about it! 👉",
				Tone:    "Playful",
			},
		},
		HashtagSets: []models.HashtagSet{
			{
				Hashtags: []string{"#NewArrival", "#MustHave", "#Trending", "#InstaGood", "#DailyInspiration"},
				Category: "Trending",
			},
			{
				Hashtags: []string{"#ProductLaunch", "#Innovation", "#QualityProducts", "#ShopNow", "#LimitedEdition"},
				Category: "Niche",
			},
			{
				Hashtags: []string{"#YourBrand", "#BrandStory", "#WeDeliver", "#CustomerFirst", "#ShopLocal"},
				Category: "Branded",
			},
		},
		PostingTime: models.PostingTime{
			Time:   "12:00 PM - 2:00 PM",
			Day:    "Wednesday or Thursday",
			Reason: "Lunch break hours on mid-week days typically see high engagement",
		},
		ContentType: "General Product/Service",
	}
}
