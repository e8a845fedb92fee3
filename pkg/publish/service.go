// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package publish

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lnrlnrleite/social/internal/locking"
	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
)

// PublicationResult is the outcome of a successful two-step publication.
type PublicationResult struct {
	Success         bool   `json:"success"`
	CreationID      string `json:"creation_id"`
	InstagramPostID string `json:"instagram_post_id"`
}

type Service struct {
	tenants   TenantServiceInterface
	instagram InstagramClientInterface
	locks     *locking.KeyedMutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	tenants TenantServiceInterface,
	instagram InstagramClientInterface,
	locks *locking.KeyedMutex,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		tenants:   tenants,
		instagram: instagram,
		locks:     locks,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// PublishPost runs the two-step Graph protocol: create a media container from
// the image URL and caption, then publish it. A failure after the container
// was created surfaces the creation ID so the publish step can be retried
// with PublishExisting.
func (s *Service) PublishPost(ctx context.Context, tenantID, imageURL, caption string) (*PublicationResult, error) {
	ctx, span := s.tracer.Start(ctx, "publish.Service.PublishPost")
	defer span.End()

	if imageURL == "" {
		return nil, fmt.Errorf("image URL is required: %w", ErrValidation)
	}
	if u, err := url.Parse(imageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("image URL must be an http(s) URL: %w", ErrValidation)
	}
	if caption == "" {
		return nil, fmt.Errorf("caption is required: %w", ErrValidation)
	}

	unlock := s.locks.Lock(tenantID)
	defer unlock()

	creds, err := s.tenants.ResolvePublicationCredentials(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	creationID, err := s.instagram.CreateMediaContainer(ctx, creds.BusinessID, creds.AccessToken, imageURL, caption)
	if err != nil {
		return nil, &PublishError{Err: err}
	}

	s.logger.Debugf("Created media container %s for tenant %s", creationID, tenantID)

	postID, err := s.instagram.PublishMediaContainer(ctx, creds.BusinessID, creds.AccessToken, creationID)
	if err != nil {
		return nil, &PublishError{CreationID: creationID, Err: err}
	}

	s.logger.Infof("Published post %s for tenant %s", postID, tenantID)

	return &PublicationResult{
		Success:         true,
		CreationID:      creationID,
		InstagramPostID: postID,
	}, nil
}

// PublishExisting retries the publish step for a media container created by
// an earlier run whose publish call failed.
func (s *Service) PublishExisting(ctx context.Context, tenantID, creationID string) (*PublicationResult, error) {
	ctx, span := s.tracer.Start(ctx, "publish.Service.PublishExisting")
	defer span.End()

	if creationID == "" {
		return nil, fmt.Errorf("creation ID is required: %w", ErrValidation)
	}

	unlock := s.locks.Lock(tenantID)
	defer unlock()

	creds, err := s.tenants.ResolvePublicationCredentials(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	postID, err := s.instagram.PublishMediaContainer(ctx, creds.BusinessID, creds.AccessToken, creationID)
	if err != nil {
		return nil, &PublishError{CreationID: creationID, Err: err}
	}

	s.logger.Infof("Published existing container %s as post %s for tenant %s", creationID, postID, tenantID)

	return &PublicationResult{
		Success:         true,
		CreationID:      creationID,
		InstagramPostID: postID,
	}, nil
}
