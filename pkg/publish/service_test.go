// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package publish

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/lnrlnrleite/social/internal/locking"
	"github.com/lnrlnrleite/social/pkg/tenant"
)

//go:generate mockgen -build_flags=--mod=mod -package publish -destination ./mock_publish.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package publish -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package publish -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package publish -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupService(t *testing.T, ctrl *gomock.Controller, span string) (*Service, *MockTenantServiceInterface, *MockInstagramClientInterface, *MockLoggerInterface) {
	t.Helper()

	mockTenants := NewMockTenantServiceInterface(ctrl)
	mockInstagram := NewMockInstagramClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), span).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	s := NewService(mockTenants, mockInstagram, locking.NewKeyedMutex(), mockTracer, mockMonitor, mockLogger)
	return s, mockTenants, mockInstagram, mockLogger
}

func testCredentials() *tenant.PublicationCredentials {
	return &tenant.PublicationCredentials{
		AccessToken: "ig-token",
		BusinessID:  "17890000000000000",
	}
}

func TestService_PublishPost(t *testing.T) {
	tenantID := "tenant-1"
	imageURL := "https://cdn.example.com/post.jpg"
	caption := "Fresh bread! 🍞"

	t.Run("two-step success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockTenants, mockInstagram, mockLogger := setupService(t, ctrl, "publish.Service.PublishPost")

		mockTenants.EXPECT().ResolvePublicationCredentials(gomock.Any(), tenantID).Return(testCredentials(), nil)
		gomock.InOrder(
			mockInstagram.EXPECT().CreateMediaContainer(gomock.Any(), "17890000000000000", "ig-token", imageURL, caption).Return("creation-42", nil),
			mockInstagram.EXPECT().PublishMediaContainer(gomock.Any(), "17890000000000000", "ig-token", "creation-42").Return("post-99", nil),
		)
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

		result, err := s.PublishPost(context.Background(), tenantID, imageURL, caption)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Error("expected success result")
		}
		if result.CreationID != "creation-42" || result.InstagramPostID != "post-99" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("invalid arguments fail before any call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _, _, _ := setupService(t, ctrl, "publish.Service.PublishPost")

		if _, err := s.PublishPost(context.Background(), tenantID, "", caption); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for missing image URL, got %v", err)
		}
		if _, err := s.PublishPost(context.Background(), tenantID, "not a url", caption); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for malformed image URL, got %v", err)
		}
		if _, err := s.PublishPost(context.Background(), tenantID, imageURL, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for missing caption, got %v", err)
		}
	})

	t.Run("container creation failure has no creation ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockTenants, mockInstagram, _ := setupService(t, ctrl, "publish.Service.PublishPost")

		mockTenants.EXPECT().ResolvePublicationCredentials(gomock.Any(), tenantID).Return(testCredentials(), nil)
		mockInstagram.EXPECT().CreateMediaContainer(gomock.Any(), gomock.Any(), gomock.Any(), imageURL, caption).
			Return("", errors.New("response contained no container id"))

		_, err := s.PublishPost(context.Background(), tenantID, imageURL, caption)
		var publishErr *PublishError
		if !errors.As(err, &publishErr) {
			t.Fatalf("expected PublishError, got %v", err)
		}
		if publishErr.CreationID != "" {
			t.Errorf("no container exists, creation ID must be empty, got %q", publishErr.CreationID)
		}
	})

	t.Run("publish failure carries the orphaned container ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockTenants, mockInstagram, mockLogger := setupService(t, ctrl, "publish.Service.PublishPost")

		mockTenants.EXPECT().ResolvePublicationCredentials(gomock.Any(), tenantID).Return(testCredentials(), nil)
		gomock.InOrder(
			mockInstagram.EXPECT().CreateMediaContainer(gomock.Any(), gomock.Any(), gomock.Any(), imageURL, caption).Return("creation-42", nil),
			mockInstagram.EXPECT().PublishMediaContainer(gomock.Any(), gomock.Any(), gomock.Any(), "creation-42").
				Return("", errors.New("media not ready")),
		)
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := s.PublishPost(context.Background(), tenantID, imageURL, caption)
		var publishErr *PublishError
		if !errors.As(err, &publishErr) {
			t.Fatalf("expected PublishError, got %v", err)
		}
		if publishErr.CreationID != "creation-42" {
			t.Errorf("expected orphaned creation-42 in error, got %q", publishErr.CreationID)
		}
	})

	t.Run("credential failure propagates untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockTenants, _, _ := setupService(t, ctrl, "publish.Service.PublishPost")

		mockTenants.EXPECT().ResolvePublicationCredentials(gomock.Any(), tenantID).Return(nil, tenant.ErrMissingCredential)

		if _, err := s.PublishPost(context.Background(), tenantID, imageURL, caption); !errors.Is(err, tenant.ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
	})
}

func TestService_PublishExisting(t *testing.T) {
	tenantID := "tenant-1"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockTenants, mockInstagram, mockLogger := setupService(t, ctrl, "publish.Service.PublishExisting")

		mockTenants.EXPECT().ResolvePublicationCredentials(gomock.Any(), tenantID).Return(testCredentials(), nil)
		mockInstagram.EXPECT().PublishMediaContainer(gomock.Any(), "17890000000000000", "ig-token", "creation-42").Return("post-99", nil)
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		result, err := s.PublishExisting(context.Background(), tenantID, "creation-42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.InstagramPostID != "post-99" || result.CreationID != "creation-42" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("empty creation ID is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _, _, _ := setupService(t, ctrl, "publish.Service.PublishExisting")

		if _, err := s.PublishExisting(context.Background(), tenantID, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("retry failure keeps the creation ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockTenants, mockInstagram, _ := setupService(t, ctrl, "publish.Service.PublishExisting")

		mockTenants.EXPECT().ResolvePublicationCredentials(gomock.Any(), tenantID).Return(testCredentials(), nil)
		mockInstagram.EXPECT().PublishMediaContainer(gomock.Any(), gomock.Any(), gomock.Any(), "creation-42").
			Return("", errors.New("media not ready"))

		_, err := s.PublishExisting(context.Background(), tenantID, "creation-42")
		var publishErr *PublishError
		if !errors.As(err, &publishErr) || publishErr.CreationID != "creation-42" {
			t.Fatalf("expected PublishError carrying creation-42, got %v", err)
		}
	})
}
