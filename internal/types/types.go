// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant is one row per business customer. Pointer fields are nullable
// columns: a nil pointer means "not configured", which is distinct from an
// empty string. Credential fields hold secrets.Codec ciphertext records,
// never plaintext.
type Tenant struct {
	ID                   string    `db:"id" json:"id"`
	BusinessName         *string   `db:"business_name" json:"business_name,omitempty"`
	Niche                *string   `db:"niche" json:"niche,omitempty"`
	BusinessDescription  *string   `db:"business_description" json:"business_description,omitempty"`
	TargetAudience       *string   `db:"target_audience" json:"target_audience,omitempty"`
	ToneOfVoice          *string   `db:"tone_of_voice" json:"tone_of_voice,omitempty"`
	MainProducts         *string   `db:"main_products" json:"main_products,omitempty"`
	GeminiAPIKey         *string   `db:"gemini_api_key" json:"gemini_api_key,omitempty"`
	InstagramAccessToken *string   `db:"instagram_access_token" json:"instagram_access_token,omitempty"`
	InstagramBusinessID  *string   `db:"instagram_business_id" json:"instagram_business_id,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// TenantParams carries a partial update. A nil field is "not supplied" and
// preserves the stored value; a non-nil field overwrites it, even when it
// points at an empty string.
type TenantParams struct {
	BusinessName         *string `json:"business_name"`
	Niche                *string `json:"niche"`
	BusinessDescription  *string `json:"business_description"`
	TargetAudience       *string `json:"target_audience"`
	ToneOfVoice          *string `json:"tone_of_voice"`
	MainProducts         *string `json:"main_products"`
	GeminiAPIKey         *string `json:"gemini_api_key"`
	InstagramAccessToken *string `json:"instagram_access_token"`
	InstagramBusinessID  *string `json:"instagram_business_id"`
}

// BrandContext is the free-text brand profile embedded into generation
// prompts, with absent columns collapsed to empty strings.
type BrandContext struct {
	BusinessName        string
	Niche               string
	BusinessDescription string
	TargetAudience      string
	ToneOfVoice         string
	MainProducts        string
}

// Deref returns the pointed-at string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Brand builds the BrandContext view of a tenant row.
func (t *Tenant) Brand() BrandContext {
	return BrandContext{
		BusinessName:        Deref(t.BusinessName),
		Niche:               Deref(t.Niche),
		BusinessDescription: Deref(t.BusinessDescription),
		TargetAudience:      Deref(t.TargetAudience),
		ToneOfVoice:         Deref(t.ToneOfVoice),
		MainProducts:        Deref(t.MainProducts),
	}
}
