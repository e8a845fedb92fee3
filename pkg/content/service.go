// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"errors"
	"strings"

	"github.com/lnrlnrleite/social/internal/locking"
	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
	"github.com/lnrlnrleite/social/pkg/tenant"
)

// GenerationResult is the output of a full pipeline run. It is returned to
// the caller and never persisted.
type GenerationResult struct {
	Caption      string `json:"caption"`
	VisualPrompt string `json:"visual_prompt"`
	ImageBase64  string `json:"image_base64"`
}

type Service struct {
	tenants TenantServiceInterface
	gemini  GeminiClientInterface
	locks   *locking.KeyedMutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	tenants TenantServiceInterface,
	gemini GeminiClientInterface,
	locks *locking.KeyedMutex,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		tenants: tenants,
		gemini:  gemini,
		locks:   locks,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GenerateCaption(ctx context.Context, tenantID, topic string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "content.Service.GenerateCaption")
	defer span.End()

	creds, err := s.tenants.ResolveGenerationCredentials(ctx, tenantID)
	if err != nil {
		return "", err
	}

	return s.caption(ctx, creds, topic)
}

// GeneratePostAndImage runs the three-stage pipeline: caption, then a visual
// prompt derived from that caption, then the image. The stages are strictly
// sequential since each consumes the previous stage's output, and the run is
// atomic: any stage failure fails the whole call with no partial result.
func (s *Service) GeneratePostAndImage(ctx context.Context, tenantID, topic string) (*GenerationResult, error) {
	ctx, span := s.tracer.Start(ctx, "content.Service.GeneratePostAndImage")
	defer span.End()

	// Settings updates for the tenant wait until the run completes, so the
	// credentials resolved here stay valid for all three stages.
	unlock := s.locks.Lock(tenantID)
	defer unlock()

	creds, err := s.tenants.ResolveGenerationCredentials(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	caption, err := s.caption(ctx, creds, topic)
	if err != nil {
		return nil, err
	}

	visualPrompt, err := s.gemini.GenerateText(ctx, creds.APIKey, visualPromptRequest(creds.Brand.BusinessName, caption))
	if err != nil {
		return nil, &GenerationError{Stage: StageVisualPrompt, Err: err}
	}
	visualPrompt = strings.TrimSpace(visualPrompt)
	if visualPrompt == "" {
		return nil, &GenerationError{Stage: StageVisualPrompt, Err: errors.New("text service returned no usable prompt")}
	}

	imageBase64, err := s.gemini.GenerateImage(ctx, creds.APIKey, visualPrompt, 1, "1:1")
	if err != nil {
		return nil, &GenerationError{Stage: StageImage, Err: err}
	}

	s.logger.Infof("Generated post and image for tenant %s", tenantID)

	return &GenerationResult{
		Caption:      caption,
		VisualPrompt: visualPrompt,
		ImageBase64:  imageBase64,
	}, nil
}

func (s *Service) caption(ctx context.Context, creds *tenant.GenerationCredentials, topic string) (string, error) {
	caption, err := s.gemini.GenerateText(ctx, creds.APIKey, captionPrompt(creds.Brand, topic))
	if err != nil {
		return "", &GenerationError{Stage: StageCaption, Err: err}
	}
	if strings.TrimSpace(caption) == "" {
		return "", &GenerationError{Stage: StageCaption, Err: errors.New("text service returned no usable text")}
	}

	return caption, nil
}
