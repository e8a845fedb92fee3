// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"github.com/lnrlnrleite/social/internal/types"
)

// TenantView is the API representation of a tenant. Credential columns are
// stored encrypted; the decrypted fields carry the plaintext when the stored
// record decodes with the current key and stay null otherwise.
type TenantView struct {
	*types.Tenant

	GeminiAPIKeyDecrypted         *string `json:"gemini_api_key_decrypted"`
	InstagramAccessTokenDecrypted *string `json:"instagram_access_token_decrypted"`
}

// GenerationCredentials is everything the content pipeline needs for one
// tenant: the decrypted Gemini key and the brand profile that shapes prompts.
type GenerationCredentials struct {
	APIKey string
	Brand  types.BrandContext
}

// PublicationCredentials is everything the publication pipeline needs for one
// tenant: the decrypted Graph API token and the Instagram business account ID.
type PublicationCredentials struct {
	AccessToken string
	BusinessID  string
}
