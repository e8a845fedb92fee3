// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/lnrlnrleite/social/internal/locking"
	"github.com/lnrlnrleite/social/internal/secrets"
	"github.com/lnrlnrleite/social/internal/storage"
	"github.com/lnrlnrleite/social/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

func strPtr(s string) *string {
	return &s
}

func testCodec(t *testing.T) *secrets.Codec {
	t.Helper()
	codec, err := secrets.NewCodec(testEncryptionKey)
	if err != nil {
		t.Fatalf("failed to build codec: %v", err)
	}
	return codec
}

func encrypted(t *testing.T, codec *secrets.Codec, plaintext string) *string {
	t.Helper()
	record, err := codec.Encrypt(&plaintext)
	if err != nil {
		t.Fatalf("failed to encrypt fixture: %v", err)
	}
	return record
}

func setupService(t *testing.T, ctrl *gomock.Controller, span string) (*Service, *MockStorageInterface, *MockLoggerInterface, *secrets.Codec) {
	t.Helper()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	codec := testCodec(t)

	mockTracer.EXPECT().Start(gomock.Any(), span).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	s := NewService(mockStorage, codec, locking.NewKeyedMutex(), mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockLogger, codec
}

func TestService_CreateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockLogger, _ := setupService(t, ctrl, "tenant.Service.CreateTenant")

	apiKey := "AIzaSy-test-key"
	mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params *types.TenantParams) (*types.Tenant, error) {
			if types.Deref(params.BusinessName) != "Padaria Sol" {
				return nil, errors.New("wrong business name")
			}
			if params.GeminiAPIKey == nil {
				return nil, errors.New("expected encrypted Gemini key")
			}
			if *params.GeminiAPIKey == apiKey {
				return nil, errors.New("Gemini key stored in plaintext")
			}
			if !strings.Contains(*params.GeminiAPIKey, ":") {
				return nil, errors.New("stored record is not an iv:ciphertext pair")
			}
			return &types.Tenant{
				ID:           "tenant-1",
				BusinessName: params.BusinessName,
				GeminiAPIKey: params.GeminiAPIKey,
			}, nil
		})
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

	view, err := s.CreateTenant(context.Background(), &types.TenantParams{
		BusinessName: strPtr("Padaria Sol"),
		GeminiAPIKey: &apiKey,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID != "tenant-1" {
		t.Errorf("expected tenant-1, got %s", view.ID)
	}
	if types.Deref(view.GeminiAPIKeyDecrypted) != apiKey {
		t.Errorf("expected decrypted key %q, got %v", apiKey, view.GeminiAPIKeyDecrypted)
	}
}

func TestService_GetTenant(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name         string
		setupMocks   func(*testing.T, *MockStorageInterface, *MockLoggerInterface, *secrets.Codec)
		expectedErr  error
		validateView func(*testing.T, *TenantView)
	}{
		{
			name: "success - credentials decode",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:                   tenantID,
					BusinessName:         strPtr("Padaria Sol"),
					GeminiAPIKey:         encrypted(t, codec, "gemini-key"),
					InstagramAccessToken: encrypted(t, codec, "ig-token"),
				}, nil)
			},
			validateView: func(t *testing.T, view *TenantView) {
				if types.Deref(view.GeminiAPIKeyDecrypted) != "gemini-key" {
					t.Errorf("expected decrypted Gemini key, got %v", view.GeminiAPIKeyDecrypted)
				}
				if types.Deref(view.InstagramAccessTokenDecrypted) != "ig-token" {
					t.Errorf("expected decrypted access token, got %v", view.InstagramAccessTokenDecrypted)
				}
			},
		},
		{
			name: "success - undecodable record degrades to null",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:           tenantID,
					GeminiAPIKey: strPtr("not-a-valid-record"),
				}, nil)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateView: func(t *testing.T, view *TenantView) {
				if view.GeminiAPIKeyDecrypted != nil {
					t.Errorf("expected nil decrypted key for undecodable record, got %v", *view.GeminiAPIKeyDecrypted)
				}
			},
		},
		{
			name: "error - not found",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockLogger, codec := setupService(t, ctrl, "tenant.Service.GetTenant")
			tc.setupMocks(t, mockStorage, mockLogger, codec)

			view, err := s.GetTenant(context.Background(), tenantID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.validateView(t, view)
		})
	}
}

func TestService_UpdateSettings(t *testing.T) {
	tenantID := "tenant-1"

	t.Run("merges only supplied fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, mockLogger, _ := setupService(t, ctrl, "tenant.Service.UpdateSettings")

		mockStorage.EXPECT().UpdateTenant(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch *types.Tenant, paths []string) (*types.Tenant, error) {
				if len(paths) != 2 {
					return nil, errors.New("expected exactly the supplied fields in paths")
				}
				if types.Deref(patch.Niche) != "Bakery" {
					return nil, errors.New("expected niche in patch")
				}
				if patch.BusinessName != nil {
					return nil, errors.New("omitted field must not enter the patch")
				}
				return &types.Tenant{ID: tenantID, Niche: patch.Niche, ToneOfVoice: patch.ToneOfVoice}, nil
			})
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

		view, err := s.UpdateSettings(context.Background(), tenantID, &types.TenantParams{
			Niche:       strPtr("Bakery"),
			ToneOfVoice: strPtr("friendly"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if types.Deref(view.Niche) != "Bakery" {
			t.Errorf("expected updated niche, got %v", view.Niche)
		}
	})

	t.Run("supplied secret is encrypted before storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, mockLogger, codec := setupService(t, ctrl, "tenant.Service.UpdateSettings")

		token := "IGQVJ-token"
		mockStorage.EXPECT().UpdateTenant(gomock.Any(), tenantID, gomock.Any(), []string{"instagram_access_token"}).DoAndReturn(
			func(_ context.Context, _ string, patch *types.Tenant, _ []string) (*types.Tenant, error) {
				if patch.InstagramAccessToken == nil || *patch.InstagramAccessToken == token {
					return nil, errors.New("access token must be stored encrypted")
				}
				decrypted, err := codec.Decrypt(patch.InstagramAccessToken)
				if err != nil || types.Deref(decrypted) != token {
					return nil, errors.New("stored record does not decrypt to the supplied token")
				}
				return &types.Tenant{ID: tenantID, InstagramAccessToken: patch.InstagramAccessToken}, nil
			})
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

		if _, err := s.UpdateSettings(context.Background(), tenantID, &types.TenantParams{InstagramAccessToken: &token}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supplied empty secret clears the column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, mockLogger, _ := setupService(t, ctrl, "tenant.Service.UpdateSettings")

		mockStorage.EXPECT().UpdateTenant(gomock.Any(), tenantID, gomock.Any(), []string{"gemini_api_key"}).DoAndReturn(
			func(_ context.Context, _ string, patch *types.Tenant, _ []string) (*types.Tenant, error) {
				if patch.GeminiAPIKey != nil {
					return nil, errors.New("empty secret must clear the column, not store a record")
				}
				return &types.Tenant{ID: tenantID}, nil
			})
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

		view, err := s.UpdateSettings(context.Background(), tenantID, &types.TenantParams{GeminiAPIKey: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.GeminiAPIKeyDecrypted != nil {
			t.Errorf("expected cleared key, got %v", *view.GeminiAPIKeyDecrypted)
		}
	})

	t.Run("unknown tenant propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, _, _ := setupService(t, ctrl, "tenant.Service.UpdateSettings")

		mockStorage.EXPECT().UpdateTenant(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

		if _, err := s.UpdateSettings(context.Background(), tenantID, &types.TenantParams{Niche: strPtr("Bakery")}); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestService_ResolveGenerationCredentials(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name        string
		setupMocks  func(*testing.T, *MockStorageInterface, *secrets.Codec)
		expectedErr error
		validate    func(*testing.T, *GenerationCredentials)
	}{
		{
			name: "success",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:           tenantID,
					BusinessName: strPtr("Padaria Sol"),
					Niche:        strPtr("Bakery"),
					ToneOfVoice:  strPtr("friendly"),
					GeminiAPIKey: encrypted(t, codec, "gemini-key"),
				}, nil)
			},
			validate: func(t *testing.T, creds *GenerationCredentials) {
				if creds.APIKey != "gemini-key" {
					t.Errorf("expected decrypted key, got %q", creds.APIKey)
				}
				if creds.Brand.BusinessName != "Padaria Sol" || creds.Brand.Niche != "Bakery" {
					t.Errorf("unexpected brand context: %+v", creds.Brand)
				}
			},
		},
		{
			name: "error - no stored key is missing credential, not decode error",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
			},
			expectedErr: ErrMissingCredential,
		},
		{
			name: "error - undecodable record",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:           tenantID,
					GeminiAPIKey: strPtr("deadbeef"),
				}, nil)
			},
			expectedErr: secrets.ErrInvalidCiphertext,
		},
		{
			name: "error - unknown tenant",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, codec := setupService(t, ctrl, "tenant.Service.ResolveGenerationCredentials")
			tc.setupMocks(t, mockStorage, codec)

			creds, err := s.ResolveGenerationCredentials(context.Background(), tenantID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.validate(t, creds)
		})
	}
}

func TestService_ResolvePublicationCredentials(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name        string
		setupMocks  func(*testing.T, *MockStorageInterface, *secrets.Codec)
		expectedErr error
		validate    func(*testing.T, *PublicationCredentials)
	}{
		{
			name: "success",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:                   tenantID,
					InstagramAccessToken: encrypted(t, codec, "ig-token"),
					InstagramBusinessID:  strPtr("17890000000000000"),
				}, nil)
			},
			validate: func(t *testing.T, creds *PublicationCredentials) {
				if creds.AccessToken != "ig-token" {
					t.Errorf("expected decrypted token, got %q", creds.AccessToken)
				}
				if creds.BusinessID != "17890000000000000" {
					t.Errorf("unexpected business ID %q", creds.BusinessID)
				}
			},
		},
		{
			name: "error - no access token",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:                  tenantID,
					InstagramBusinessID: strPtr("17890000000000000"),
				}, nil)
			},
			expectedErr: ErrMissingCredential,
		},
		{
			name: "error - no business account ID",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:                   tenantID,
					InstagramAccessToken: encrypted(t, codec, "ig-token"),
				}, nil)
			},
			expectedErr: ErrMissingCredential,
		},
		{
			name: "error - undecodable token",
			setupMocks: func(t *testing.T, mockStorage *MockStorageInterface, codec *secrets.Codec) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{
					ID:                   tenantID,
					InstagramAccessToken: strPtr("bogus"),
					InstagramBusinessID:  strPtr("17890000000000000"),
				}, nil)
			},
			expectedErr: secrets.ErrInvalidCiphertext,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, codec := setupService(t, ctrl, "tenant.Service.ResolvePublicationCredentials")
			tc.setupMocks(t, mockStorage, codec)

			creds, err := s.ResolvePublicationCredentials(context.Background(), tenantID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.validate(t, creds)
		})
	}
}
