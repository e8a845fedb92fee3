// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"

	"github.com/lnrlnrleite/social/internal/locking"
	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
	"github.com/lnrlnrleite/social/internal/types"
)

type Service struct {
	storage StorageInterface
	codec   CodecInterface
	locks   *locking.KeyedMutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	codec CodecInterface,
	locks *locking.KeyedMutex,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		codec:   codec,
		locks:   locks,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, params *types.TenantParams) (*TenantView, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	stored := *params
	if params.GeminiAPIKey != nil {
		enc, err := s.codec.Encrypt(params.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt Gemini API key: %w", err)
		}
		stored.GeminiAPIKey = enc
	}
	if params.InstagramAccessToken != nil {
		enc, err := s.codec.Encrypt(params.InstagramAccessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt Instagram access token: %w", err)
		}
		stored.InstagramAccessToken = enc
	}

	t, err := s.storage.CreateTenant(ctx, &stored)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Created tenant %s (%s)", t.ID, types.Deref(t.BusinessName))
	return s.view(t), nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*TenantView, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.view(t), nil
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

// UpdateSettings merges the supplied fields into the stored tenant row.
// Omitted fields keep their stored value. A supplied empty credential clears
// the column; any other supplied credential is encrypted before it is stored.
// Updates for the same tenant are serialized so concurrent partial updates
// cannot interleave their read-modify-write cycles.
func (s *Service) UpdateSettings(ctx context.Context, id string, params *types.TenantParams) (*TenantView, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateSettings")
	defer span.End()

	unlock := s.locks.Lock(id)
	defer unlock()

	patch := new(types.Tenant)
	var paths []string

	assign := func(column string, dst **string, src *string) {
		if src == nil {
			return
		}
		*dst = src
		paths = append(paths, column)
	}

	assign("business_name", &patch.BusinessName, params.BusinessName)
	assign("niche", &patch.Niche, params.Niche)
	assign("business_description", &patch.BusinessDescription, params.BusinessDescription)
	assign("target_audience", &patch.TargetAudience, params.TargetAudience)
	assign("tone_of_voice", &patch.ToneOfVoice, params.ToneOfVoice)
	assign("main_products", &patch.MainProducts, params.MainProducts)

	if params.GeminiAPIKey != nil {
		enc, err := s.codec.Encrypt(params.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt Gemini API key: %w", err)
		}
		patch.GeminiAPIKey = enc
		paths = append(paths, "gemini_api_key")
	}
	if params.InstagramAccessToken != nil {
		enc, err := s.codec.Encrypt(params.InstagramAccessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt Instagram access token: %w", err)
		}
		patch.InstagramAccessToken = enc
		paths = append(paths, "instagram_access_token")
	}
	if params.InstagramBusinessID != nil {
		if *params.InstagramBusinessID != "" {
			patch.InstagramBusinessID = params.InstagramBusinessID
		}
		paths = append(paths, "instagram_business_id")
	}

	t, err := s.storage.UpdateTenant(ctx, id, patch, paths)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("Updated settings for tenant %s, fields %v", id, paths)
	return s.view(t), nil
}

// ResolveGenerationCredentials loads and decrypts what the content pipeline
// needs. A tenant without a stored key fails with ErrMissingCredential before
// any decode is attempted.
func (s *Service) ResolveGenerationCredentials(ctx context.Context, id string) (*GenerationCredentials, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ResolveGenerationCredentials")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.GeminiAPIKey == nil {
		return nil, fmt.Errorf("tenant %s has no Gemini API key: %w", id, ErrMissingCredential)
	}

	key, err := s.codec.Decrypt(t.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Gemini API key for tenant %s: %w", id, err)
	}

	return &GenerationCredentials{
		APIKey: types.Deref(key),
		Brand:  t.Brand(),
	}, nil
}

// ResolvePublicationCredentials loads and decrypts what the publication
// pipeline needs. Both the access token and the business account ID must be
// configured.
func (s *Service) ResolvePublicationCredentials(ctx context.Context, id string) (*PublicationCredentials, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ResolvePublicationCredentials")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.InstagramAccessToken == nil {
		return nil, fmt.Errorf("tenant %s has no Instagram access token: %w", id, ErrMissingCredential)
	}
	if types.Deref(t.InstagramBusinessID) == "" {
		return nil, fmt.Errorf("tenant %s has no Instagram business account ID: %w", id, ErrMissingCredential)
	}

	token, err := s.codec.Decrypt(t.InstagramAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Instagram access token for tenant %s: %w", id, err)
	}

	return &PublicationCredentials{
		AccessToken: types.Deref(token),
		BusinessID:  types.Deref(t.InstagramBusinessID),
	}, nil
}

// view decorates a stored row with decrypted credential fields. A record that
// no longer decodes under the current key degrades to a null decrypted field
// instead of failing the read.
func (s *Service) view(t *types.Tenant) *TenantView {
	v := &TenantView{Tenant: t}

	if key, err := s.codec.Decrypt(t.GeminiAPIKey); err != nil {
		s.logger.Warnf("Stored Gemini API key for tenant %s does not decode: %v", t.ID, err)
	} else {
		v.GeminiAPIKeyDecrypted = key
	}

	if token, err := s.codec.Decrypt(t.InstagramAccessToken); err != nil {
		s.logger.Warnf("Stored Instagram access token for tenant %s does not decode: %v", t.ID, err)
	} else {
		v.InstagramAccessTokenDecrypted = token
	}

	return v
}
