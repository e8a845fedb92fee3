// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"fmt"
	"strings"

	"github.com/lnrlnrleite/social/internal/types"
)

// captionPrompt builds the brand-aware instruction for the caption stage. The
// whole brand profile is embedded so the model writes in the tenant's voice;
// an empty topic falls back to a generic institutional post.
func captionPrompt(brand types.BrandContext, topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the social media manager for %s.\n", brand.BusinessName)
	fmt.Fprintf(&b, "Business niche: %s.\n", brand.Niche)
	fmt.Fprintf(&b, "Use this context about the business: %s.\n", brand.BusinessDescription)
	fmt.Fprintf(&b, "Brand tone of voice: %s.\n", brand.ToneOfVoice)
	fmt.Fprintf(&b, "Target audience: %s.\n", brand.TargetAudience)
	fmt.Fprintf(&b, "Main products/services: %s.\n", brand.MainProducts)

	b.WriteString("\nWrite a complete Instagram post for today. ")
	b.WriteString("The post must be attractive and engaging, and contain emojis and a few hashtags at the end.")

	if topic != "" {
		fmt.Fprintf(&b, "\n\nFocus the post on this specific topic: %s", topic)
	} else {
		b.WriteString("\n\nWrite an institutional post highlighting the benefits of the business.")
	}

	return b.String()
}

// visualPromptRequest builds the second-stage instruction that derives an
// image-generation prompt from the caption. The caption is embedded verbatim;
// the model is told to answer with the prompt alone.
func visualPromptRequest(businessName, caption string) string {
	return fmt.Sprintf("Based on the Instagram caption below, written for a business called %s, "+
		"create a single image-generation prompt in English, detailed and focused on photorealism "+
		"and high quality, to send to an image-generation AI. Describe the scene visually and the "+
		"style of the image. Do NOT add any other text to the answer, only the image prompt in "+
		"English.\n\nCaption:\n%s", businessName, caption)
}
