package service

import "fmt"

// buildImagePrompt assembles the instruction for an image request. The
// image itself travels alongside as an inline part; the description is
// the coarse label derived by the inspector.
func buildImagePrompt(description string) string {
	return fmt.Sprintf(`%s

Analyze this product image and generate social media content.
Image characteristics: %s.

%s

%s`, systemPrompt, description, outputContract, promptClosing)
}

// buildTextPrompt assembles the instruction for a brief request.
func buildTextPrompt(brief string) string {
	return fmt.Sprintf(`%s

Product/Content Brief: %s

Based on this brief, generate creative social media content.

%s

%s`, systemPrompt, brief, outputContract, promptClosing)
}
