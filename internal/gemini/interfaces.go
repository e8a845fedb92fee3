// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package gemini

import (
	"context"
)

type ClientInterface interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
	GenerateImage(ctx context.Context, apiKey, prompt string, sampleCount int, aspectRatio string) (string, error)
}
