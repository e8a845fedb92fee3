// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/lnrlnrleite/social/internal/storage"
	"github.com/lnrlnrleite/social/pkg/tenant"
)

func setupAPI(t *testing.T, ctrl *gomock.Controller) (*chi.Mux, *MockServiceInterface) {
	t.Helper()

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)
	return mux, mockService
}

func TestAPI_Generate(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*testing.T, *MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success with topic",
			body: `{"topic": "weekend special"}`,
			setupMocks: func(t *testing.T, mockService *MockServiceInterface) {
				mockService.EXPECT().GeneratePostAndImage(gomock.Any(), "tenant-1", "weekend special").Return(
					&GenerationResult{Caption: "Fresh bread! 🍞", VisualPrompt: "a loaf", ImageBase64: "AAA="}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"image_base64":"AAA="`,
		},
		{
			name: "success without body",
			body: "",
			setupMocks: func(t *testing.T, mockService *MockServiceInterface) {
				mockService.EXPECT().GeneratePostAndImage(gomock.Any(), "tenant-1", "").Return(
					&GenerationResult{Caption: "caption", VisualPrompt: "prompt", ImageBase64: "AAA="}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown tenant",
			body: `{}`,
			setupMocks: func(t *testing.T, mockService *MockServiceInterface) {
				mockService.EXPECT().GeneratePostAndImage(gomock.Any(), "tenant-1", "").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "missing credential",
			body: `{}`,
			setupMocks: func(t *testing.T, mockService *MockServiceInterface) {
				mockService.EXPECT().GeneratePostAndImage(gomock.Any(), "tenant-1", "").Return(nil, tenant.ErrMissingCredential)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "upstream failure",
			body: `{}`,
			setupMocks: func(t *testing.T, mockService *MockServiceInterface) {
				mockService.EXPECT().GeneratePostAndImage(gomock.Any(), "tenant-1", "").Return(nil,
					&GenerationError{Stage: StageImage, Err: errors.New("quota exceeded")})
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, mockService := setupAPI(t, ctrl)
			tc.setupMocks(t, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/generate", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
			if tc.expectedBody != "" && !strings.Contains(w.Body.String(), tc.expectedBody) {
				t.Errorf("expected body to contain %s, got %s", tc.expectedBody, w.Body.String())
			}
		})
	}
}
