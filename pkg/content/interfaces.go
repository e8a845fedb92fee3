// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"

	"github.com/lnrlnrleite/social/pkg/tenant"
)

// TenantServiceInterface defines the tenant operations required by the content
// package. It is a subset of the pkg/tenant service.
type TenantServiceInterface interface {
	ResolveGenerationCredentials(ctx context.Context, id string) (*tenant.GenerationCredentials, error)
}

// GeminiClientInterface defines the generative AI operations required by the
// content package. It is satisfied by internal/gemini.Client.
type GeminiClientInterface interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
	GenerateImage(ctx context.Context, apiKey, prompt string, sampleCount int, aspectRatio string) (string, error)
}

// ServiceInterface defines the content generation operations.
type ServiceInterface interface {
	GenerateCaption(ctx context.Context, tenantID, topic string) (string, error)
	GeneratePostAndImage(ctx context.Context, tenantID, topic string) (*GenerationResult, error)
}
